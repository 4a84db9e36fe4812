package service

import "github.com/aussiebroadwan/quill/internal/blog/domain"

// requireUser returns the caller's user id or ErrNotAuthenticated.
func requireUser(id domain.Identity) (string, error) {
	if id == nil {
		return "", ErrNotAuthenticated
	}
	userID, ok := id.Require()
	if !ok {
		return "", ErrNotAuthenticated
	}
	return userID, nil
}
