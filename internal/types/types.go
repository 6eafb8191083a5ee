package types

import (
	"context"
	"net/http"
	"time"
)

// Session represents an authenticated session. The CSRF token is issued at
// login/signup and accompanies every state-changing call; the session cookie
// itself lives in the HTTP client's cookie jar. The session is written only
// by the auth flow (set on login/signup, cleared on logout) and read
// everywhere else.
type Session struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	CSRFToken string `json:"csrfToken"`
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RetryConfig configures retry behavior
type RetryConfig struct {
	MaxRetries int           `json:"maxRetries"`
	RetryWait  time.Duration `json:"retryWait"`
	MaxWait    time.Duration `json:"maxWait"`
}

// Hooks provides lifecycle hooks for requests
type Hooks struct {
	OnRequest  func(ctx context.Context, req *http.Request)
	OnResponse func(ctx context.Context, resp *http.Response, duration time.Duration)
	OnError    func(ctx context.Context, err error)
}
