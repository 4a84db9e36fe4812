package service

import (
	"errors"
	"net/http"
)

// Kind classifies a failure. Each kind maps to one HTTP status.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindConflict
	KindNotFound
)

var kindStatus = map[Kind]int{
	KindUnknown:        http.StatusInternalServerError,
	KindValidation:     http.StatusUnprocessableEntity,
	KindAuthentication: http.StatusUnauthorized,
	KindAuthorization:  http.StatusUnauthorized,
	KindConflict:       http.StatusForbidden,
	KindNotFound:       http.StatusNotFound,
}

// Status returns the HTTP status for k.
func (k Kind) Status() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// DefaultMessage is shown for failures that carry no message of their own.
const DefaultMessage = "An error occurred"

// Error is the failure returned by validation and every domain operation.
// Message and Data are safe to show to the client; Err is the internal cause
// and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Data    any
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return DefaultMessage
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode implements httpx.StatusError.
func (e *Error) StatusCode() int { return e.Kind.Status() }

// ErrorData implements httpx.DataError.
func (e *Error) ErrorData() any { return e.Data }

// Is matches another *Error with the same kind and message, so the exported
// sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// FieldError names the input field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	ErrUserExists        = &Error{Kind: KindConflict, Message: "User already exists!"}
	ErrUserNotFound      = &Error{Kind: KindAuthentication, Message: "User not found."}
	ErrPasswordIncorrect = &Error{Kind: KindAuthentication, Message: "Password is incorrect."}
	ErrNotAuthenticated  = &Error{Kind: KindAuthentication, Message: "Not authenticated!"}
	ErrInvalidUser       = &Error{Kind: KindAuthentication, Message: "Invalid user."}
	ErrNotAuthorized     = &Error{Kind: KindAuthorization, Message: "Not authorized!"}
	ErrPostNotFound      = &Error{Kind: KindNotFound, Message: "No post found!"}
	ErrNoSuchUser        = &Error{Kind: KindNotFound, Message: "User not found."}
)

// NewValidationError reports a single failing field.
func NewValidationError(field, message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
		Data:    []FieldError{{Field: field, Message: message}},
	}
}

// Internal wraps an unexpected failure (store, hashing, signing). The cause is
// kept for logging but never shown to the client.
func Internal(err error) *Error {
	return &Error{Kind: KindUnknown, Err: err}
}

// StatusOf returns the HTTP status carried by err, or 500.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode()
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message of err. Errors that are not an
// *Error never expose their text.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindUnknown && e.Message != "" {
		return e.Message
	}
	return DefaultMessage
}

// DataOf returns the structured payload carried by err, if any.
func DataOf(err error) any {
	var e *Error
	if errors.As(err, &e) {
		return e.Data
	}
	return nil
}
