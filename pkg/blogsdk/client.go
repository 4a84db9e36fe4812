package blogsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to a Quill blog service. Unauthenticated operations live on
// Client; Login returns a Session for everything else.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a user account.
func (c *Client) Register(ctx context.Context, email, password, name string) (*User, error) {
	var out struct {
		CreateUser User `json:"createUser"`
	}
	err := c.graphql(ctx, "", `mutation Register($email: String!, $password: String!, $name: String!) {
  createUser(userInput: {email: $email, password: $password, name: $name}) { _id name email status }
}`, map[string]any{"email": email, "password": password, "name": name}, &out)
	if err != nil {
		return nil, err
	}
	return &out.CreateUser, nil
}

// Login exchanges credentials for a token and returns a Session using it.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out struct {
		Login *AuthData `json:"login"`
	}
	err := c.graphql(ctx, "", `query Login($email: String!, $password: String!) {
  login(email: $email, password: $password) { token userId }
}`, map[string]any{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	if out.Login == nil {
		return nil, &APIError{Status: http.StatusInternalServerError, Message: "login returned no token"}
	}
	return c.NewSession(out.Login.Token, out.Login.UserID), nil
}

// NewSession wraps an existing token. The token is not checked until it is
// used.
func (c *Client) NewSession(token, userID string) *Session {
	return &Session{client: c, token: token, userID: userID}
}
