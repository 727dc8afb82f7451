package port

import (
	"errors"
	"fmt"
)

// Sentinel errors used across ports.
var (
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInactive       = errors.New("account is deactivated")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrPageOutOfRange = errors.New("page out of range")
)

// ValidationError reports a bad request parameter or body field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PageRangeError carries the bounds of a page request that overshot.
type PageRangeError struct {
	Page       int
	TotalPages int
	Total      int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("page %d does not exist. Total pages available: %d", e.Page, e.TotalPages)
}

// Unwrap lets errors.Is match ErrPageOutOfRange.
func (e *PageRangeError) Unwrap() error { return ErrPageOutOfRange }

// UpstreamError is a failed call to the partner API.
type UpstreamError struct {
	StatusCode int    // 0 when the request never got a response
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Error pairs a sentinel with a message meant for the API caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is match the sentinel.
func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
