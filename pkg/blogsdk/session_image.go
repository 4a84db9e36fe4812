package blogsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// UploadImage stores an image and returns its public path. oldPath, when
// set, is deleted on success. contentType must be image/png, image/jpg or
// image/jpeg; anything else is ignored by the service ("No file provided!").
func (s *Session) UploadImage(ctx context.Context, filename, contentType string, r io.Reader, oldPath string) (*UploadImageResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if oldPath != "" {
		if err := mw.WriteField("oldPath", oldPath); err != nil {
			return nil, fmt.Errorf("failed to create form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to create form: %w", err)
	}

	resp, err := s.client.doRequest(ctx, s.Token(), http.MethodPut, "/post-image", &buf, map[string]string{
		"Content-Type": mw.FormDataContentType(),
	})
	if err != nil {
		return nil, err
	}

	expected := http.StatusCreated
	if resp.StatusCode == http.StatusOK {
		expected = http.StatusOK // no usable file in the request
	}

	var out UploadImageResponse
	if err := decodeJSON(resp, &out, expected); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteImage removes a stored image by its public path.
func (s *Session) DeleteImage(ctx context.Context, imagePath string) error {
	payload, err := json.Marshal(DeleteImageRequest{ImagePath: imagePath})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.client.doRequest(ctx, s.Token(), http.MethodPut, "/delete-image", bytes.NewReader(payload), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
