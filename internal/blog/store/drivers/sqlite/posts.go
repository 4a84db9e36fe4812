package sqlite

import (
	"context"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store/drivers/sqlite/gen"
)

type postsRepo struct {
	q *gen.Queries
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row, err := r.q.GetPostByID(ctx, id)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return mapPost(row), nil
}

func (r *postsRepo) ListPosts(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	rows, err := r.q.ListPosts(ctx, gen.ListPostsParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPost(row))
	}
	return out, nil
}

func (r *postsRepo) CountPosts(ctx context.Context) (int, error) {
	n, err := r.q.CountPosts(ctx)
	return int(n), err
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	err := r.q.CreatePost(ctx, gen.CreatePostParams{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		ImageUrl:  p.ImageURL,
		CreatorID: p.CreatorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
	return mapConstraint(err)
}

func (r *postsRepo) UpdatePost(ctx context.Context, p domain.Post) error {
	return mapAffected(r.q.UpdatePost(ctx, gen.UpdatePostParams{
		Title:     p.Title,
		Content:   p.Content,
		ImageUrl:  p.ImageURL,
		UpdatedAt: p.UpdatedAt,
		ID:        p.ID,
	}))
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	return mapAffected(r.q.DeletePost(ctx, id))
}

func (r *postsRepo) ListImageURLs(ctx context.Context) ([]string, error) {
	return r.q.ListPostImageURLs(ctx)
}
