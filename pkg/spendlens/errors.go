package spendlens

import (
	"errors"

	"github.com/spendlens/spendlens-go/internal/types"
)

// The transport produces these values, so they are aliased rather than
// re-declared: errors.Is/As work across the package boundary.
var (
	// ErrUnauthorized is returned on any 401 response. It signals that the
	// session has ended; the caller should re-authenticate rather than retry.
	ErrUnauthorized = types.ErrUnauthorized

	// ErrNotAuthenticated is returned when no session has been established
	ErrNotAuthenticated = types.ErrNotAuthenticated

	// ErrLoginFailed is returned when login or signup is rejected
	ErrLoginFailed = types.ErrLoginFailed

	// ErrConflict is returned when a delete is rejected because the
	// category or payment method is used by existing expenses.
	ErrConflict = types.ErrConflict

	// ErrNotFound is returned when a resource does not exist
	ErrNotFound = types.ErrNotFound

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = types.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = types.ErrTimeout

	// ErrServerError is returned for server errors
	ErrServerError = types.ErrServerError

	// ErrMalformedResponse is returned when a list endpoint returns
	// neither a bare array nor an {items, total} object.
	ErrMalformedResponse = types.ErrMalformedResponse

	// ErrIncompleteRange is returned by FetchAll when a page after the
	// first fails: the accumulated expenses are returned alongside it and
	// may be incomplete.
	ErrIncompleteRange = types.ErrIncompleteRange
)

// Error represents a structured API error
type Error = types.Error

// IsAuthError checks if error is authentication related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrLoginFailed)
}

// IsConflict checks if error is a referential-integrity conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsIncomplete checks if a range fetch returned partial data
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncompleteRange)
}

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
