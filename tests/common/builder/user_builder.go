//go:build unit || e2e

package builder

import (
	"parkspot/internal/domain/user"
)

type UserBuilder struct {
	ID    string
	Name  string
	Email string
	Phone string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    "user-test",
		Name:  "Test Driver",
		Email: "driver@example.com",
		Phone: "+1-555-0100",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) Build() user.User {
	return user.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}
