package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/quill/pkg/cryptox"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// fakeImages records cleared paths.
type fakeImages struct {
	mu      sync.Mutex
	cleared []string
	err     error
}

func (f *fakeImages) Clear(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, path)
	return f.err
}

type testEnv struct {
	store  *sqlite.Store
	clock  *fakeClock
	images *fakeImages
	tokens *TokenService
	users  *UserService
	posts  *PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	clock := newFakeClock()
	tokens, err := NewTokenService([]byte("test-secret-at-least-16"), "quill", time.Hour, clock.Now)
	require.NoError(t, err)

	imgs := &fakeImages{}
	return &testEnv{
		store:  st,
		clock:  clock,
		images: imgs,
		tokens: tokens,
		users: &UserService{
			Store:  st,
			Hasher: cryptox.NewPasswordHasher("pepper"),
			Tokens: tokens,
			Clock:  clock.Now,
		},
		posts: &PostService{
			Store:  st,
			Images: imgs,
			Clock:  clock.Now,
		},
	}
}

type fakeUser struct {
	Email    string
	Password string
	Name     string
}

func newFakeUser() fakeUser {
	return fakeUser{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
		Name:     gofakeit.Name(),
	}
}

// register creates a user and returns it with its authenticated identity.
func (e *testEnv) register(t *testing.T) (domain.User, domain.Identity) {
	t.Helper()

	fu := newFakeUser()
	u, err := e.users.Register(context.Background(), fu.Email, fu.Password, fu.Name)
	require.NoError(t, err)
	return u, domain.Authenticated{UserID: u.ID, Email: u.Email}
}

func (e *testEnv) createPost(t *testing.T, id domain.Identity, imageURL string) domain.Post {
	t.Helper()

	p, err := e.posts.Create(context.Background(), id, PostInput{
		Title:    "Title " + gofakeit.Word(),
		Content:  gofakeit.Sentence(10),
		ImageURL: imageURL,
	})
	require.NoError(t, err)
	return p
}
