package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

// ImageRemover deletes stored images by their public path.
type ImageRemover interface {
	Clear(path string) error
}

// PostInput carries the client-supplied fields of a create or update.
type PostInput struct {
	Title    string
	Content  string
	ImageURL string
}

func (in PostInput) validate() error {
	return firstError(
		func() error { return ValidateTitle(in.Title) },
		func() error { return ValidateContent(in.Content) },
	)
}

type PostService struct {
	Store  store.Store
	Images ImageRemover
	Clock  Clock
}

// Create stores a post owned by the caller and appends it to the caller's
// post list in the same transaction.
func (s *PostService) Create(ctx context.Context, id domain.Identity, in PostInput) (domain.Post, error) {
	l := slogx.FromContext(ctx)

	userID, err := requireUser(id)
	if err != nil {
		return domain.Post{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Post{}, err
	}

	now := s.Clock.now()
	p := domain.Post{
		ID:        idx.NewAt(now),
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		ImageURL:  in.ImageURL,
		CreatorID: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.ImageURL == domain.ImageURLUnchanged {
		p.ImageURL = ""
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidUser
			}
			return err
		}
		if err := tx.Posts().CreatePost(ctx, p); err != nil {
			return err
		}
		return tx.Users().AppendPost(ctx, userID, p.ID)
	})
	if err != nil {
		return domain.Post{}, s.fail(ctx, "failed to create post", err)
	}

	l.Info("post created", slog.String("post_id", p.ID), slog.String("user_id", userID))
	return p, nil
}

// List returns one page of posts, newest first. Pages start at 1; anything
// lower is treated as 1.
func (s *PostService) List(ctx context.Context, id domain.Identity, page int) (domain.PostPage, error) {
	if _, err := requireUser(id); err != nil {
		return domain.PostPage{}, err
	}
	if page <= 0 {
		page = 1
	}

	total, err := s.Store.Posts().CountPosts(ctx)
	if err != nil {
		return domain.PostPage{}, s.fail(ctx, "failed to count posts", err)
	}

	posts, err := s.Store.Posts().ListPosts(ctx, domain.PostsPerPage, (page-1)*domain.PostsPerPage)
	if err != nil {
		return domain.PostPage{}, s.fail(ctx, "failed to list posts", err)
	}

	return domain.PostPage{Posts: posts, TotalPosts: total}, nil
}

// Get returns a single post.
func (s *PostService) Get(ctx context.Context, id domain.Identity, postID string) (domain.Post, error) {
	if _, err := requireUser(id); err != nil {
		return domain.Post{}, err
	}
	return s.load(ctx, postID)
}

// Update overwrites title and content. The image is replaced unless the
// client sends the "undefined" sentinel. Only the creator may edit.
func (s *PostService) Update(ctx context.Context, id domain.Identity, postID string, in PostInput) (domain.Post, error) {
	userID, err := requireUser(id)
	if err != nil {
		return domain.Post{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Post{}, err
	}

	p, err := s.load(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}
	if p.CreatorID != userID {
		slogx.FromContext(ctx).Info("post update rejected: not the creator",
			slog.String("post_id", p.ID), slog.String("user_id", userID))
		return domain.Post{}, ErrNotAuthorized
	}

	p.Title = strings.TrimSpace(in.Title)
	p.Content = strings.TrimSpace(in.Content)
	if in.ImageURL != domain.ImageURLUnchanged {
		p.ImageURL = in.ImageURL
	}
	p.UpdatedAt = s.Clock.now()

	if err := s.Store.Posts().UpdatePost(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, s.fail(ctx, "failed to update post", err)
	}

	slogx.FromContext(ctx).Info("post updated", slog.String("post_id", p.ID))
	return p, nil
}

// Delete removes the post, its entry in the creator's post list and its
// stored image. Only the creator may delete.
func (s *PostService) Delete(ctx context.Context, id domain.Identity, postID string) error {
	l := slogx.FromContext(ctx)

	userID, err := requireUser(id)
	if err != nil {
		return err
	}

	p, err := s.load(ctx, postID)
	if err != nil {
		return err
	}
	if p.CreatorID != userID {
		l.Info("post delete rejected: not the creator",
			slog.String("post_id", p.ID), slog.String("user_id", userID))
		return ErrNotAuthorized
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Posts().DeletePost(ctx, p.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrPostNotFound
			}
			return err
		}
		return tx.Users().RemovePost(ctx, p.CreatorID, p.ID)
	})
	if err != nil {
		return s.fail(ctx, "failed to delete post", err)
	}

	if p.ImageURL != "" && s.Images != nil {
		if err := s.Images.Clear(p.ImageURL); err != nil {
			l.Warn("failed to clear post image", slog.String("path", p.ImageURL), slog.Any("error", err))
		}
	}

	l.Info("post deleted", slog.String("post_id", p.ID))
	return nil
}

func (s *PostService) load(ctx context.Context, postID string) (domain.Post, error) {
	postID, err := idx.Parse(postID)
	if err != nil {
		return domain.Post{}, ErrPostNotFound
	}

	p, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, s.fail(ctx, "failed to load post", err)
	}
	return p, nil
}

// fail passes *Error values through and wraps everything else as Internal,
// logging the cause.
func (s *PostService) fail(ctx context.Context, msg string, err error) error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	slogx.FromContext(ctx).Error(msg, slog.Any("error", err))
	return Internal(err)
}
