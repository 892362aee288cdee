//go:build unit || e2e

package builder

import (
	reqdto "parkspot/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "demo@parkspot.app",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO(name string) reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     name,
		Email:    a.Email,
		Password: a.Password,
	}
}
