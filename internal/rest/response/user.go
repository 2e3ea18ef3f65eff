package response

import (
	"github.com/conduit-labs/conduit/domain"
)

type User struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

type SingleUser struct {
	User User `json:"user"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.AuthenticatedUser) User {
	return User{
		Email:    u.Email,
		Token:    u.Token,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}
