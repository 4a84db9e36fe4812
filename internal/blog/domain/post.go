package domain

import "time"

// ImageURLUnchanged is the sentinel sent by clients on update when the post
// keeps its current image.
const ImageURLUnchanged = "undefined"

// PostsPerPage is the fixed page size used when listing posts.
const PostsPerPage = 2

type Post struct {
	ID        string
	Title     string
	Content   string
	ImageURL  string
	CreatorID string // immutable after creation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostPage is one page of posts, newest first, plus the total post count.
type PostPage struct {
	Posts      []Post
	TotalPosts int
}

// TimeFormat is how timestamps are rendered to clients (ISO-8601, UTC,
// millisecond precision).
const TimeFormat = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in TimeFormat.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}
