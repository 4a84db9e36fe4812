package blogsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request, adding the Authorization header when
// token is set.
func (c *Client) doRequest(
	ctx context.Context,
	token, method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// decodeJSON decodes a JSON response into target, or returns an *APIError
// when the status is not expectedStatus.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// graphql runs one operation against /graphql and decodes "data" into out.
// The first entry of "errors" is returned as an *APIError.
func (c *Client) graphql(ctx context.Context, token, query string, vars map[string]any, out any) error {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, token, http.MethodPost, "/graphql", bytes.NewReader(payload), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var gr graphqlResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return parseErrorResponse(resp, body)
	}

	if len(gr.Errors) > 0 {
		e := gr.Errors[0]
		status := e.Status
		if status == 0 {
			status = resp.StatusCode
			if status == http.StatusOK {
				status = http.StatusBadRequest
			}
		}
		return &APIError{Status: status, Message: e.Message, Data: e.Data}
	}

	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(gr.Data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
