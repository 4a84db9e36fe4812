package graphql

import (
	"context"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	graphql "github.com/graph-gophers/graphql-go"
)

// PostsFetchedMessage accompanies every page of posts.
const PostsFetchedMessage = "Fetched posts successfully."

// Resolver is the root resolver for queries and mutations. Each field takes
// the caller's identity from the request context and passes it to the
// service explicitly.
type Resolver struct {
	UserService *service.UserService
	PostService *service.PostService
}

type userInputData struct {
	Email    string
	Name     string
	Password string
}

type postInputData struct {
	Title    string
	Content  string
	ImageUrl string
}

func (in *postInputData) toService() service.PostInput {
	if in == nil {
		return service.PostInput{}
	}
	return service.PostInput{Title: in.Title, Content: in.Content, ImageURL: in.ImageUrl}
}

// Queries

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authDataResolver, error) {
	auth, err := r.UserService.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}
	return &authDataResolver{auth: auth}, nil
}

func (r *Resolver) Posts(ctx context.Context, args struct{ Page *int32 }) (*postDataResolver, error) {
	page := 1
	if args.Page != nil {
		page = int(*args.Page)
	}

	res, err := r.PostService.List(ctx, domain.IdentityFromContext(ctx), page)
	if err != nil {
		return nil, err
	}
	return &postDataResolver{root: r, page: res}, nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ PostID graphql.ID }) (*postResolver, error) {
	p, err := r.PostService.Get(ctx, domain.IdentityFromContext(ctx), string(args.PostID))
	if err != nil {
		return nil, err
	}
	return &postResolver{root: r, post: p}, nil
}

func (r *Resolver) User(ctx context.Context) (*userResolver, error) {
	u, err := r.UserService.GetUser(ctx, domain.IdentityFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, user: u}, nil
}

// Mutations

func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput *userInputData }) (*userResolver, error) {
	in := args.UserInput
	if in == nil {
		in = &userInputData{}
	}

	u, err := r.UserService.Register(ctx, in.Email, in.Password, in.Name)
	if err != nil {
		return nil, err
	}
	return &userResolver{root: r, user: u}, nil
}

func (r *Resolver) CreatePost(ctx context.Context, args struct{ PostInput *postInputData }) (*postResolver, error) {
	p, err := r.PostService.Create(ctx, domain.IdentityFromContext(ctx), args.PostInput.toService())
	if err != nil {
		return nil, err
	}
	return &postResolver{root: r, post: p}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	PostID    graphql.ID
	PostInput *postInputData
}) (*postResolver, error) {
	p, err := r.PostService.Update(ctx, domain.IdentityFromContext(ctx), string(args.PostID), args.PostInput.toService())
	if err != nil {
		return nil, err
	}
	return &postResolver{root: r, post: p}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ PostID graphql.ID }) (bool, error) {
	if err := r.PostService.Delete(ctx, domain.IdentityFromContext(ctx), string(args.PostID)); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) UpdateStatus(ctx context.Context, args struct{ StatusInput string }) (string, error) {
	u, err := r.UserService.UpdateStatus(ctx, domain.IdentityFromContext(ctx), args.StatusInput)
	if err != nil {
		return "", err
	}
	return u.Status, nil
}
