package response

import "parkspot/internal/domain/user"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	User        user.User `json:"user"`
}

type ProfileResponse struct {
	User       user.User `json:"user"`
	IsDarkMode bool      `json:"isDarkMode"`
}

type ThemeResponse struct {
	IsDarkMode bool `json:"isDarkMode"`
}
