package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret we accept.
const MinSecretLength = 16

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with a shared HMAC-SHA256 secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. The secret is copied.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	if len(secret) < MinSecretLength {
		return nil, errors.New("jwtx: HS256 secret too short")
	}
	return &HS256Signer{secret: append([]byte(nil), secret...)}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
