package domain

import "context"

// Identity is the outcome of the auth gate for a single request. It is either
// Anonymous or Authenticated; operations that need a user call Require.
type Identity interface {
	// Require returns the authenticated user id, or ok=false for anonymous
	// callers.
	Require() (userID string, ok bool)
	isIdentity()
}

// Anonymous is a request without a usable token.
type Anonymous struct{}

func (Anonymous) Require() (string, bool) { return "", false }
func (Anonymous) isIdentity()             {}

// Authenticated is a request carrying a valid, unexpired token.
type Authenticated struct {
	UserID string
	Email  string
}

func (a Authenticated) Require() (string, bool) { return a.UserID, a.UserID != "" }
func (Authenticated) isIdentity()               {}

type identityKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity attached by the auth gate, or
// Anonymous when there is none.
func IdentityFromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(identityKey{}).(Identity); ok && id != nil {
		return id
	}
	return Anonymous{}
}
