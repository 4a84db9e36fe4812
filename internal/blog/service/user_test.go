package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("creates user with defaults", func(t *testing.T) {
		u, err := env.users.Register(ctx, "test@test.com", "tester", "Tester")
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "test@test.com", u.Email)
		require.Equal(t, domain.DefaultStatus, u.Status)
		require.Empty(t, u.PostIDs)
		require.NotEqual(t, "tester", u.PasswordHash)
		require.True(t, u.CreatedAt.Equal(env.clock.Now()))
	})

	t.Run("duplicate email is a conflict whatever the other fields", func(t *testing.T) {
		_, err := env.users.Register(ctx, "test@test.com", "tester", "Tester")
		require.ErrorIs(t, err, ErrUserExists)
		require.Equal(t, "User already exists!", MessageOf(err))
		require.Equal(t, 403, StatusOf(err))

		_, err = env.users.Register(ctx, "test@test.com", "x", "")
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("validation order", func(t *testing.T) {
		_, err := env.users.Register(ctx, "bad-email", "x", "")
		require.Equal(t, 422, StatusOf(err))
		require.Equal(t, "email is invalid", MessageOf(err))

		_, err = env.users.Register(ctx, "new@test.com", "abc", "")
		require.Equal(t, "password must contain at least 5 characters", MessageOf(err))

		_, err = env.users.Register(ctx, "new@test.com", "tester", " ")
		require.Equal(t, "name must not be empty", MessageOf(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	fu := newFakeUser()
	u, err := env.users.Register(ctx, fu.Email, fu.Password, fu.Name)
	require.NoError(t, err)

	t.Run("issues a token for the user", func(t *testing.T) {
		auth, err := env.users.Login(ctx, fu.Email, fu.Password)
		require.NoError(t, err)
		require.Equal(t, u.ID, auth.UserID)

		claims, err := env.tokens.Verify(auth.Token)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID)
		require.Equal(t, u.Email, claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.users.Login(ctx, fu.Email, fu.Password+"x")
		require.ErrorIs(t, err, ErrPasswordIncorrect)
		require.Equal(t, 401, StatusOf(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.users.Login(ctx, "nobody@test.com", "whatever")
		require.ErrorIs(t, err, ErrUserNotFound)
		require.Equal(t, 401, StatusOf(err))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := env.users.Login(ctx, "nope", "whatever")
		require.Equal(t, 422, StatusOf(err))
	})
}

func TestTokenLifetime(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	fu := newFakeUser()
	_, err := env.users.Register(ctx, fu.Email, fu.Password, fu.Name)
	require.NoError(t, err)

	// Log in part way through a second.
	env.clock.Advance(700 * time.Millisecond)
	auth, err := env.users.Login(ctx, fu.Email, fu.Password)
	require.NoError(t, err)

	env.clock.Advance(time.Hour - time.Millisecond)
	_, err = env.tokens.Verify(auth.Token)
	require.NoError(t, err)

	env.clock.Advance(301 * time.Millisecond)
	_, err = env.tokens.Verify(auth.Token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestGetUserAndStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	u, id := env.register(t)

	t.Run("anonymous callers are rejected", func(t *testing.T) {
		_, err := env.users.GetUser(ctx, domain.Anonymous{})
		require.ErrorIs(t, err, ErrNotAuthenticated)

		_, err = env.users.UpdateStatus(ctx, domain.Anonymous{}, "Busy")
		require.ErrorIs(t, err, ErrNotAuthenticated)

		_, err = env.users.GetUser(ctx, nil)
		require.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("reads own record", func(t *testing.T) {
		got, err := env.users.GetUser(ctx, id)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
		require.Equal(t, domain.DefaultStatus, got.Status)
	})

	t.Run("updates status", func(t *testing.T) {
		env.clock.Advance(time.Minute)
		got, err := env.users.UpdateStatus(ctx, id, "Writing a post")
		require.NoError(t, err)
		require.Equal(t, "Writing a post", got.Status)

		reread, err := env.users.GetUser(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Writing a post", reread.Status)
		require.True(t, reread.UpdatedAt.After(reread.CreatedAt))
	})

	t.Run("empty status", func(t *testing.T) {
		_, err := env.users.UpdateStatus(ctx, id, "")
		require.Equal(t, 422, StatusOf(err))
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		ghost := domain.Authenticated{UserID: "01J00000000000000000000000"}
		_, err := env.users.GetUser(ctx, ghost)
		require.ErrorIs(t, err, ErrNoSuchUser)
		require.Equal(t, 404, StatusOf(err))
	})
}
