package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
)

// DefaultErrorMessage replaces the message of errors that carry no status.
const DefaultErrorMessage = "An error occurred"

// StatusError is implemented by errors that know their HTTP status.
type StatusError interface {
	error
	StatusCode() int
}

// DataError is implemented by errors that carry a structured payload for the
// client.
type DataError interface {
	ErrorData() any
}

// ErrorBody is the uniform error response: {"message": ..., "data": ...}.
type ErrorBody struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteError renders err as an ErrorBody. The status comes from StatusError
// (500 otherwise); errors without a status never expose their message.
func WriteError(w http.ResponseWriter, err error) {
	status, body := ErrorResponse(err)
	WriteJSON(w, status, body)
}

// ErrorResponse returns the status and body WriteError would send.
func ErrorResponse(err error) (int, ErrorBody) {
	body := ErrorBody{Message: DefaultErrorMessage}

	var se StatusError
	if !errors.As(err, &se) {
		return http.StatusInternalServerError, body
	}

	if msg := se.Error(); msg != "" {
		body.Message = msg
	}
	var de DataError
	if errors.As(err, &de) {
		body.Data = de.ErrorData()
	}

	status := se.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return status, body
}

// Error is a minimal StatusError for transport-level failures (bad JSON,
// oversized uploads) that never reach the domain layer.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string   { return e.Message }
func (e *Error) StatusCode() int { return e.Status }

// NewError returns an *Error with status and message.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}
