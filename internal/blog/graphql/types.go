package graphql

import (
	"context"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	graphql "github.com/graph-gophers/graphql-go"
)

type postResolver struct {
	root *Resolver
	post domain.Post
}

func (p *postResolver) ID() graphql.ID    { return graphql.ID(p.post.ID) }
func (p *postResolver) Title() string     { return p.post.Title }
func (p *postResolver) Content() string   { return p.post.Content }
func (p *postResolver) ImageUrl() string  { return p.post.ImageURL }
func (p *postResolver) CreatedAt() string { return domain.FormatTime(p.post.CreatedAt) }
func (p *postResolver) UpdatedAt() string { return domain.FormatTime(p.post.UpdatedAt) }

func (p *postResolver) Creator(ctx context.Context) (*userResolver, error) {
	u, err := p.root.UserService.GetUserByID(ctx, p.post.CreatorID)
	if err != nil {
		return nil, err
	}
	return &userResolver{root: p.root, user: u}, nil
}

type userResolver struct {
	root *Resolver
	user domain.User
}

func (u *userResolver) ID() graphql.ID    { return graphql.ID(u.user.ID) }
func (u *userResolver) Name() string      { return u.user.Name }
func (u *userResolver) Email() string     { return u.user.Email }
func (u *userResolver) Password() *string { return nil }
func (u *userResolver) Status() string    { return u.user.Status }

// Posts resolves the user's own posts in creation order.
func (u *userResolver) Posts(ctx context.Context) (*[]*postResolver, error) {
	id := domain.IdentityFromContext(ctx)

	out := make([]*postResolver, 0, len(u.user.PostIDs))
	for _, postID := range u.user.PostIDs {
		p, err := u.root.PostService.Get(ctx, id, postID)
		if err != nil {
			return nil, err
		}
		out = append(out, &postResolver{root: u.root, post: p})
	}
	return &out, nil
}

type authDataResolver struct {
	auth domain.AuthData
}

func (a *authDataResolver) Token() string  { return a.auth.Token }
func (a *authDataResolver) UserID() string { return a.auth.UserID }

type postDataResolver struct {
	root *Resolver
	page domain.PostPage
}

func (d *postDataResolver) Message() string { return PostsFetchedMessage }

func (d *postDataResolver) Posts() *[]*postResolver {
	out := make([]*postResolver, 0, len(d.page.Posts))
	for _, p := range d.page.Posts {
		out = append(out, &postResolver{root: d.root, post: p})
	}
	return &out
}

func (d *postDataResolver) TotalPosts() int32 { return int32(d.page.TotalPosts) } // #nosec G115
