package blogsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any failure reported by the service, whether it
// came from a REST route or from the "errors" array of a GraphQL response.
type APIError struct {
	// Status is the HTTP-style status of the failure (401, 403, 404, 422, ...).
	Status int

	// Message is the human-readable message sent by the service.
	Message string

	// Data holds structured details, if any.
	Data json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("blog api error (%d): %s", e.Status, e.Message)
}

// FieldErrors decodes Data as validation details. It returns nil when Data
// holds something else.
func (e *APIError) FieldErrors() []FieldError {
	var out []FieldError
	if len(e.Data) == 0 || json.Unmarshal(e.Data, &out) != nil {
		return nil
	}
	return out
}

// StatusOf returns the status of an *APIError, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports a 401 failure (not authenticated or not authorized).
func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }

// IsNotFound reports a 404 failure.
func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }

// IsConflict reports a 403 failure raised for an already existing resource.
func IsConflict(err error) bool { return StatusOf(err) == http.StatusForbidden }

// IsValidation reports a 422 failure.
func IsValidation(err error) bool { return StatusOf(err) == http.StatusUnprocessableEntity }

// parseErrorResponse converts a non-success REST response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Message == "" {
		return &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected response: %s", http.StatusText(resp.StatusCode)),
		}
	}
	return &APIError{Status: resp.StatusCode, Message: er.Message, Data: er.Data}
}
