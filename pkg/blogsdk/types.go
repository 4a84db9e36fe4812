package blogsdk

import "encoding/json"

// ============================================================================
// REST Types
// ============================================================================

// ErrorResponse is the body of every failed REST request.
type ErrorResponse struct {
	// Message is a human-readable description of the failure
	Message string `json:"message"`

	// Data carries structured details, e.g. the failing field of a validation error
	Data json.RawMessage `json:"data,omitempty" swaggertype:"object"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadImageResponse is returned by PUT /post-image.
type UploadImageResponse struct {
	Message string `json:"message"`

	// FilePath is the public path of the stored image (images/<uuid>-<name>).
	// Empty when no file was provided.
	FilePath string `json:"filePath,omitempty"`
}

// DeleteImageRequest is the body of PUT /delete-image.
type DeleteImageRequest struct {
	ImagePath string `json:"imagePath"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// GraphQL Types
// ============================================================================

type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Posts  []Post `json:"posts,omitempty"`
}

type Post struct {
	ID        string `json:"_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	Creator   *User  `json:"creator,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// PostInput is the payload of createPost and updatePost. Set ImageURL to
// ImageUnchanged to keep a post's current image on update.
type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
}

// ImageUnchanged tells updatePost to keep the current image.
const ImageUnchanged = "undefined"

// PostPage is one page of posts.
type PostPage struct {
	Message    string `json:"message"`
	Posts      []Post `json:"posts"`
	TotalPosts int    `json:"totalPosts"`
}

// AuthData is the result of the login query.
type AuthData struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// FieldError names the input field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string          `json:"message"`
	Status  int             `json:"status,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Path    []any           `json:"path,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}
