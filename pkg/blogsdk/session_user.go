package blogsdk

import "context"

// User returns the session user with status and posts.
func (s *Session) User(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	err := s.graphql(ctx, `query { user { _id name email status posts { _id title } } }`, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateStatus sets the session user's status and returns it.
func (s *Session) UpdateStatus(ctx context.Context, status string) (string, error) {
	var out struct {
		UpdateStatus string `json:"updateStatus"`
	}
	err := s.graphql(ctx, `mutation UpdateStatus($status: String!) { updateStatus(statusInput: $status) }`,
		map[string]any{"status": status}, &out)
	if err != nil {
		return "", err
	}
	return out.UpdateStatus, nil
}
