package types

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrUnauthorized is returned on any 401 response. It is a hard
	// signal: the session has ended and the caller must re-authenticate.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotAuthenticated is returned when no session has been established
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoginFailed is returned when login fails
	ErrLoginFailed = errors.New("login failed")

	// ErrConflict is returned on a 409 response: the resource is
	// referenced by existing expenses and cannot be removed.
	ErrConflict = errors.New("resource in use")

	// ErrNotFound is returned when resource not found
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout is returned on timeout
	ErrTimeout = errors.New("request timeout")

	// ErrServerError is returned for server errors
	ErrServerError = errors.New("server error")

	// ErrMalformedResponse is returned when a list endpoint returns
	// neither a bare array nor an {items, total} object.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrIncompleteRange is returned when a multi-page range fetch fails
	// after the first page; accumulated results are still returned.
	ErrIncompleteRange = errors.New("range fetch incomplete")
)

// Error represents an API error
type Error struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Details    map[string]interface{} `json:"details,omitempty"`
	Err        error                  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}

	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Code == t.Code
}
