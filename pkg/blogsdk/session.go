package blogsdk

import (
	"context"
	"sync"
)

// Session carries the token of a logged-in user. Tokens expire after the
// service's configured lifetime (an hour by default); log in again when a
// call fails with IsUnauthorized.
type Session struct {
	client *Client

	mu     sync.RWMutex
	token  string
	userID string
}

// Token returns the bearer token in use.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// UserID returns the id of the logged-in user.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// SetToken replaces the token, e.g. after logging in again.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) graphql(ctx context.Context, query string, vars map[string]any, out any) error {
	return s.client.graphql(ctx, s.Token(), query, vars, out)
}
