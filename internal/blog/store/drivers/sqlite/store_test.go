package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.NewAt(base),
		Email:        email,
		Name:         "Writer",
		PasswordHash: "hash",
		Status:       domain.DefaultStatus,
		CreatedAt:    base,
		UpdatedAt:    base,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	u := seedUser(t, st, "writer@example.com")

	t.Run("lookup by id and email", func(t *testing.T) {
		byID, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Email, byID.Email)
		require.Equal(t, domain.DefaultStatus, byID.Status)
		require.Empty(t, byID.PostIDs)
		require.True(t, byID.CreatedAt.Equal(base))

		byEmail, err := st.Users().GetUserByEmail(ctx, "writer@example.com")
		require.NoError(t, err)
		require.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := st.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := u
		dup.ID = idx.New()
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update status", func(t *testing.T) {
		u.Status = "Writing"
		u.UpdatedAt = base.Add(time.Minute)
		require.NoError(t, st.Users().UpdateStatus(ctx, u))

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "Writing", got.Status)
		require.True(t, got.UpdatedAt.Equal(base.Add(time.Minute)))

		err = st.Users().UpdateStatus(ctx, domain.User{ID: "missing", Status: "x"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPosts(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "writer@example.com")

	var ids []string
	for i := range 5 {
		at := base.Add(time.Duration(i) * time.Second)
		p := domain.Post{
			ID:        idx.NewAt(at),
			Title:     "Post title",
			Content:   "Post content",
			CreatorID: u.ID,
			CreatedAt: at,
			UpdatedAt: at,
		}
		if i == 0 {
			p.ImageURL = "images/first.png"
		}
		require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Posts().CreatePost(ctx, p); err != nil {
				return err
			}
			return tx.Users().AppendPost(ctx, u.ID, p.ID)
		}))
		ids = append(ids, p.ID)
	}

	t.Run("count and page newest first", func(t *testing.T) {
		total, err := st.Posts().CountPosts(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, total)

		page, err := st.Posts().ListPosts(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		require.Equal(t, ids[2], page[0].ID)
		require.Equal(t, ids[1], page[1].ID)
	})

	t.Run("owner keeps posts in creation order", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, ids, got.PostIDs)
	})

	t.Run("image urls", func(t *testing.T) {
		urls, err := st.Posts().ListImageURLs(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"images/first.png"}, urls)
	})

	t.Run("update", func(t *testing.T) {
		p, err := st.Posts().GetPostByID(ctx, ids[0])
		require.NoError(t, err)

		p.Title = "New title"
		p.ImageURL = ""
		p.UpdatedAt = base.Add(time.Hour)
		require.NoError(t, st.Posts().UpdatePost(ctx, p))

		got, err := st.Posts().GetPostByID(ctx, ids[0])
		require.NoError(t, err)
		require.Equal(t, "New title", got.Title)
		require.Empty(t, got.ImageURL)
		require.True(t, got.CreatedAt.Equal(base))
	})

	t.Run("delete removes back-reference", func(t *testing.T) {
		require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Posts().DeletePost(ctx, ids[4]); err != nil {
				return err
			}
			return tx.Users().RemovePost(ctx, u.ID, ids[4])
		}))

		_, err := st.Posts().GetPostByID(ctx, ids[4])
		require.ErrorIs(t, err, store.ErrNotFound)

		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, ids[:4], got.PostIDs)

		require.ErrorIs(t, st.Posts().DeletePost(ctx, ids[4]), store.ErrNotFound)
	})
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	u := seedUser(t, st, "writer@example.com")

	p := domain.Post{
		ID:        idx.New(),
		Title:     "Post title",
		Content:   "Post content",
		CreatorID: u.ID,
		CreatedAt: base,
		UpdatedAt: base,
	}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Posts().CreatePost(ctx, p); err != nil {
			return err
		}
		return store.ErrNotFound
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Posts().GetPostByID(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}
