package response

import (
	"github.com/conduit-labs/conduit/domain"
)

type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	Following bool   `json:"following"`
}

type SingleProfile struct {
	Profile Profile `json:"profile"`
}

// NewProfileFromDomain: Domain -> Response
func NewProfileFromDomain(p *domain.Profile) Profile {
	return Profile{
		Username:  p.Username,
		Bio:       p.Bio,
		Image:     p.Image,
		Following: p.Following,
	}
}
