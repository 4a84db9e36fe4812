package blog_test

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

// pngBytes is a 1x1 transparent PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func fetchImage(t *testing.T, baseURL, path string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, baseURL+"/"+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

// TestImageUploadFlow uploads an image, attaches it to a post, replaces it
// and deletes the post.
func TestImageUploadFlow(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	ctx := t.Context()
	owner, _ := newUser(t, client)

	upload, err := owner.UploadImage(ctx, "pixel.png", "image/png", bytes.NewReader(pngBytes), "")
	require.NoError(t, err)
	require.Equal(t, "File stored.", upload.Message)
	require.True(t, strings.HasPrefix(upload.FilePath, "images/"))

	status, body := fetchImage(t, baseURL, upload.FilePath)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, pngBytes, body)

	in := newPostInput()
	in.ImageURL = upload.FilePath
	post, err := owner.CreatePost(ctx, in)
	require.NoError(t, err)

	// Replace the image: the old file goes away
	replacement, err := owner.UploadImage(ctx, "pixel2.png", "image/png", bytes.NewReader(pngBytes), upload.FilePath)
	require.NoError(t, err)
	status, _ = fetchImage(t, baseURL, upload.FilePath)
	require.Equal(t, http.StatusNotFound, status)

	in.ImageURL = replacement.FilePath
	_, err = owner.UpdatePost(ctx, post.ID, in)
	require.NoError(t, err)

	// Deleting the post deletes its image
	require.NoError(t, owner.DeletePost(ctx, post.ID))
	status, _ = fetchImage(t, baseURL, replacement.FilePath)
	require.Equal(t, http.StatusNotFound, status)
}

// TestImageEdgeCases covers unsupported types, missing auth and deletes.
func TestImageEdgeCases(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	ctx := t.Context()
	owner, _ := newUser(t, client)

	upload, err := owner.UploadImage(ctx, "anim.gif", "image/gif", strings.NewReader("GIF89a"), "")
	require.NoError(t, err)
	require.Equal(t, "No file provided!", upload.Message)
	require.Empty(t, upload.FilePath)

	_, err = client.NewSession("", "").UploadImage(ctx, "pixel.png", "image/png", bytes.NewReader(pngBytes), "")
	assertStatus(t, err, http.StatusUnauthorized, "Not authenticated!")

	stored, err := owner.UploadImage(ctx, "pixel.jpg", "image/jpeg", bytes.NewReader(pngBytes), "")
	require.NoError(t, err)

	err = client.NewSession("", "").DeleteImage(ctx, stored.FilePath)
	assertStatus(t, err, http.StatusUnauthorized, "Not authenticated!")

	require.NoError(t, owner.DeleteImage(ctx, stored.FilePath))
	err = owner.DeleteImage(ctx, stored.FilePath)
	require.True(t, blogsdk.IsNotFound(err))

	err = owner.DeleteImage(ctx, "images/../quill.db")
	require.True(t, blogsdk.IsValidation(err))
}
