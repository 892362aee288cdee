package user

// User is the session identity. The JSON layout matches the persisted "user"
// storage key and must stay stable across releases.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Role      string `json:"role,omitempty"`
}

func (u User) IsZero() bool {
	return u.ID == ""
}
