package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Leeway allows small clock skew when validating exp/nbf.
	Leeway time.Duration

	// Now supplies the current time. Nil means time.Now.
	Now func() time.Time
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier validates tokens produced by HS256Signer.
type HS256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

// NewVerifierHS256 creates a verifier sharing secret with the signer.
func NewVerifierHS256(secret []byte, opts VerifyOptions) *HS256Verifier {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &HS256Verifier{secret: append([]byte(nil), secret...), opts: opts}
}

// Verify parses tokenStr, checks signature, algorithm, validity window and
// issuer, and returns the claims. Every failure wraps one of the Err*
// sentinels above.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.opts.Now),
		jwt.WithLeeway(v.opts.Leeway),
		jwt.WithExpirationRequired(),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if claims.UserID == "" {
		return Claims{}, fmt.Errorf("%w: missing userId", ErrInvalidClaim)
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return fmt.Errorf("%w: %w", ErrNotYetValid, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrInvalidSig, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidClaim, err)
	}
}
