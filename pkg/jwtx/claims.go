package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is how long a login token stays valid.
const DefaultAccessTokenTTL = time.Hour

// Claims are the access-token claims. UserID and Email are what the blog
// needs to attach an identity to a request; the registered claims carry
// issuer and validity window.
type Claims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// NewAccessClaims builds claims valid from now until now+ttl. Numeric dates
// carry whole seconds, so exp is rounded up and the token never lives
// shorter than ttl.
func NewAccessClaims(userID, email, issuer string, ttl time.Duration, now time.Time) Claims {
	exp := now.Add(ttl)
	if t := exp.Truncate(time.Second); !t.Equal(exp) {
		exp = t.Add(time.Second)
	}

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID: userID,
		Email:  email,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}
