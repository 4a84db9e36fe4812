package sqlite

import (
	"context"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return r.withPosts(ctx, row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return r.withPosts(ctx, row)
}

func (r *usersRepo) withPosts(ctx context.Context, row gen.User) (domain.User, error) {
	ids, err := r.q.ListUserPostIDs(ctx, row.ID)
	if err != nil {
		return domain.User{}, err
	}
	return mapUser(row, ids), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	})
	return mapConstraint(err)
}

func (r *usersRepo) UpdateStatus(ctx context.Context, u domain.User) error {
	return mapAffected(r.q.UpdateUserStatus(ctx, gen.UpdateUserStatusParams{
		Status:    u.Status,
		UpdatedAt: u.UpdatedAt,
		ID:        u.ID,
	}))
}

func (r *usersRepo) AppendPost(ctx context.Context, userID, postID string) error {
	err := r.q.AppendUserPost(ctx, gen.AppendUserPostParams{
		UserID: userID,
		PostID: postID,
	})
	return mapConstraint(err)
}

func (r *usersRepo) RemovePost(ctx context.Context, userID, postID string) error {
	return r.q.RemoveUserPost(ctx, gen.RemoveUserPostParams{
		UserID: userID,
		PostID: postID,
	})
}
