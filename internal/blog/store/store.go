package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. Sub-repositories are exposed as methods so a Tx-scoped store hands out
// repos bound to the same transaction.
type Store interface {
	Users() Users
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user with its owned post ids in creation order.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and registration.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateStatus overwrites the status and sets updated_at.
	UpdateStatus(ctx context.Context, u domain.User) error

	// AppendPost adds postID at the end of the user's post list.
	AppendPost(ctx context.Context, userID, postID string) error

	// RemovePost drops postID from the user's post list.
	RemovePost(ctx context.Context, userID, postID string) error
}

type Posts interface {
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns posts ordered newest first (created_at, then id).
	ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, error)

	CountPosts(ctx context.Context) (int, error)

	CreatePost(ctx context.Context, p domain.Post) error

	// UpdatePost overwrites title, content, image_url and updated_at.
	UpdatePost(ctx context.Context, p domain.Post) error

	// DeletePost removes the post; user_posts rows cascade.
	DeletePost(ctx context.Context, id string) error

	// ListImageURLs returns every non-empty image_url (housekeeping).
	ListImageURLs(ctx context.Context) ([]string, error)
}
