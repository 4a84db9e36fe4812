package blogsdk

import "context"

const postFields = `_id title content imageUrl createdAt updatedAt creator { _id name }`

// CreatePost publishes a post owned by the session user.
func (s *Session) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	var out struct {
		CreatePost Post `json:"createPost"`
	}
	err := s.graphql(ctx, `mutation CreatePost($in: PostInputData) {
  createPost(postInput: $in) { `+postFields+` }
}`, map[string]any{"in": in}, &out)
	if err != nil {
		return nil, err
	}
	return &out.CreatePost, nil
}

// UpdatePost edits a post. Only its creator may do so.
func (s *Session) UpdatePost(ctx context.Context, postID string, in PostInput) (*Post, error) {
	var out struct {
		UpdatePost Post `json:"updatePost"`
	}
	err := s.graphql(ctx, `mutation UpdatePost($id: ID!, $in: PostInputData) {
  updatePost(postId: $id, postInput: $in) { `+postFields+` }
}`, map[string]any{"id": postID, "in": in}, &out)
	if err != nil {
		return nil, err
	}
	return &out.UpdatePost, nil
}

// DeletePost removes a post and its image. Only its creator may do so.
func (s *Session) DeletePost(ctx context.Context, postID string) error {
	return s.graphql(ctx, `mutation DeletePost($id: ID!) { deletePost(postId: $id) }`,
		map[string]any{"id": postID}, nil)
}

// Post fetches a single post.
func (s *Session) Post(ctx context.Context, postID string) (*Post, error) {
	var out struct {
		Post Post `json:"post"`
	}
	err := s.graphql(ctx, `query Post($id: ID!) { post(postId: $id) { `+postFields+` } }`,
		map[string]any{"id": postID}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Post, nil
}

// Posts fetches one page of posts, newest first. Pages start at 1.
func (s *Session) Posts(ctx context.Context, page int) (*PostPage, error) {
	var out struct {
		Posts PostPage `json:"posts"`
	}
	err := s.graphql(ctx, `query Posts($page: Int) {
  posts(page: $page) { message totalPosts posts { `+postFields+` } }
}`, map[string]any{"page": page}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Posts, nil
}
