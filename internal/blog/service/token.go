package service

import (
	"time"

	"github.com/aussiebroadwan/quill/pkg/jwtx"
)

// TokenService issues and verifies login tokens.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
	Clock    Clock
}

// NewTokenService wires an HS256 signer and verifier around secret. The
// verifier reads time from the same clock the signer stamps tokens with.
func NewTokenService(secret []byte, issuer string, ttl time.Duration, clock Clock) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	if clock == nil {
		clock = time.Now
	}

	return &TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: issuer, Now: clock}),
		Issuer:   issuer,
		TTL:      ttl,
		Clock:    clock,
	}, nil
}

// Issue signs a token for the user valid for TTL from now.
func (s *TokenService) Issue(userID, email string) (string, error) {
	claims := jwtx.NewAccessClaims(userID, email, s.Issuer, s.TTL, s.Clock.now())
	return s.Signer.Sign(claims)
}

// Verify returns the claims of a valid token. Any failure is an error
// wrapping one of the jwtx sentinels.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	return s.Verifier.Verify(token)
}
