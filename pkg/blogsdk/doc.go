/*
Package blogsdk is a Go client for the Quill blog service.

# Client vs Session

Client covers the unauthenticated surface: registration, login and the
health probes. Login returns a Session that attaches the bearer token to
every call.

	client := blogsdk.NewClient("http://localhost:8080")

	if _, err := client.Register(ctx, "test@test.com", "tester", "Tester"); err != nil {
		if blogsdk.IsConflict(err) {
			// already registered
		}
	}

	session, err := client.Login(ctx, "test@test.com", "tester")
	if err != nil {
		return err
	}

	upload, err := session.UploadImage(ctx, "cat.png", "image/png", file, "")
	post, err := session.CreatePost(ctx, blogsdk.PostInput{
		Title:    "Hello",
		Content:  "World!",
		ImageURL: upload.FilePath,
	})

# Errors

Every failure reported by the service, REST or GraphQL, is an *APIError with
the status, message and optional data sent by the server. Validation
failures carry the failing field:

	_, err := session.CreatePost(ctx, blogsdk.PostInput{Title: "Hi", Content: "Content"})
	var apiErr *blogsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Status == 422 {
		fmt.Println(apiErr.FieldErrors()[0].Field) // title
	}

# Thread Safety

Client and Session are safe for concurrent use.
*/
package blogsdk
