package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/cryptox"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

// PasswordHasher hashes and checks passwords (cryptox.PasswordHasher).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

type UserService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens *TokenService
	Clock  Clock
}

// Register creates a user. A taken email is rejected before the other fields
// are looked at.
func (s *UserService) Register(ctx context.Context, email, password, name string) (domain.User, error) {
	l := slogx.FromContext(ctx)
	email = strings.TrimSpace(email)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		l.Info("registration rejected: email taken")
		return domain.User{}, ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		l.Error("failed to look up user", slog.Any("error", err))
		return domain.User{}, Internal(err)
	}

	if err := firstError(
		func() error { return ValidateEmail(email) },
		func() error { return ValidatePassword(password) },
		func() error { return ValidateName(name) },
	); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, Internal(err)
	}

	now := s.Clock.now()
	u := domain.User{
		ID:           idx.NewAt(now),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Status:       domain.DefaultStatus,
		PostIDs:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUserExists
		}
		l.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, Internal(err)
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// Login checks the credentials and issues a token.
func (s *UserService) Login(ctx context.Context, email, password string) (domain.AuthData, error) {
	l := slogx.FromContext(ctx)
	email = strings.TrimSpace(email)

	if err := firstError(
		func() error { return ValidateEmail(email) },
		func() error { return ValidatePassword(password) },
	); err != nil {
		return domain.AuthData{}, err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login rejected: unknown email")
			return domain.AuthData{}, ErrUserNotFound
		}
		l.Error("failed to look up user", slog.Any("error", err))
		return domain.AuthData{}, Internal(err)
	}

	if err := s.Hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login rejected: wrong password", slog.String("user_id", u.ID))
			return domain.AuthData{}, ErrPasswordIncorrect
		}
		l.Error("failed to verify password", slog.Any("error", err))
		return domain.AuthData{}, Internal(err)
	}

	token, err := s.Tokens.Issue(u.ID, u.Email)
	if err != nil {
		l.Error("failed to sign token", slog.Any("error", err))
		return domain.AuthData{}, Internal(err)
	}

	return domain.AuthData{Token: token, UserID: u.ID}, nil
}

// GetUserByID fetches a user by id without an identity check. It backs the
// creator field of posts.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNoSuchUser
		}
		slogx.FromContext(ctx).Error("failed to load user", slog.Any("error", err))
		return domain.User{}, Internal(err)
	}
	return u, nil
}

// GetUser returns the caller's own user record.
func (s *UserService) GetUser(ctx context.Context, id domain.Identity) (domain.User, error) {
	userID, err := requireUser(id)
	if err != nil {
		return domain.User{}, err
	}
	return s.GetUserByID(ctx, userID)
}

// UpdateStatus overwrites the caller's status.
func (s *UserService) UpdateStatus(ctx context.Context, id domain.Identity, status string) (domain.User, error) {
	userID, err := requireUser(id)
	if err != nil {
		return domain.User{}, err
	}
	if err := ValidateStatus(status); err != nil {
		return domain.User{}, err
	}

	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	u.Status = status
	u.UpdatedAt = s.Clock.now()
	if err := s.Store.Users().UpdateStatus(ctx, u); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNoSuchUser
		}
		slogx.FromContext(ctx).Error("failed to update status", slog.Any("error", err))
		return domain.User{}, Internal(err)
	}

	slogx.FromContext(ctx).Info("status updated", slog.String("user_id", u.ID))
	return u, nil
}
