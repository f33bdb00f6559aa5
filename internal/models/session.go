package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload carrying a signed-in identity between
// requests. UID is empty for the synthetic admin identity, which has no
// stored record.
type Claims struct {
	jwt.RegisteredClaims
	UID      string `json:"uid,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Standard string `json:"standard,omitempty"`
}

// Session is the per-request identity the auth middleware attaches to
// the gin context after verifying a token.
type Session struct {
	UID      string `json:"uid,omitempty"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Standard string `json:"standard,omitempty"`
}

func (c *Claims) Session() *Session {
	return &Session{
		UID:      c.UID,
		Name:     c.Name,
		Role:     c.Role,
		Standard: c.Standard,
	}
}
