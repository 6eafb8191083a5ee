package types

import "time"

const (
	// DefaultBaseURL is the default SpendLens API base URL
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the page size used by full-range expense fetches
	DefaultPageSize = 500

	// UserAgent is the user agent string
	UserAgent = "spendlens-go/1.0.0"
)
