package spendlens

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/spendlens/spendlens-go/internal/transport"
	internalTypes "github.com/spendlens/spendlens-go/internal/types"
)

const (
	// DefaultBaseURL is the default SpendLens API base URL
	DefaultBaseURL = internalTypes.DefaultBaseURL

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = internalTypes.DefaultTimeout

	// DefaultPageSize is the page size used by full-range expense fetches
	DefaultPageSize = internalTypes.DefaultPageSize
)

// Client is the main SpendLens API client
type Client struct {
	// Service interfaces
	Categories     CategoryService
	PaymentMethods PaymentMethodService
	Expenses       ExpenseService
	Analytics      AnalyticsService
	Reports        ReportService
	Auth           AuthService

	// Internal fields
	baseURL    string
	httpClient *http.Client
	transport  Transport
	options    *ClientOptions
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL overrides the default API base URL
	BaseURL string

	// HTTPClient allows using a custom HTTP client. A cookie jar is
	// installed when the client has none, since the session travels as a
	// cookie.
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior
	RetryConfig *internalTypes.RetryConfig

	// RateLimiter for rate limiting
	RateLimiter RateLimiter

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// Transport handles HTTP communication
type Transport interface {
	Do(ctx context.Context, req *transport.Request, result interface{}) error
	SetSession(session *internalTypes.Session)
	Session() *internalTypes.Session
}

// NewClient creates a new SpendLens client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	// Credentials are cookie-based: make sure the client can hold them
	if opts.HTTPClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		opts.HTTPClient.Jar = jar
	}

	// Create transport using the internal package
	transportOpts := &transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	}
	trans := transport.NewRESTTransport(transportOpts)

	// Create client
	c := &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		transport:  trans,
		options:    opts,
	}

	// Initialize services
	c.initServices()

	return c, nil
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Categories = &categoryService{client: c}
	c.PaymentMethods = &paymentMethodService{client: c}
	c.Expenses = &expenseService{client: c}
	c.Analytics = &analyticsService{client: c}
	c.Reports = &reportService{client: c}
	c.Auth = newAuthService(c)
}

// Session returns the current session, or nil before login
func (c *Client) Session() *Session {
	s := c.transport.Session()
	if s == nil {
		return nil
	}
	return &Session{
		UserID:    s.UserID,
		Email:     s.Email,
		CSRFToken: s.CSRFToken,
	}
}

// do executes a REST request with hooks, rate limiting and error capture
func (c *Client) do(ctx context.Context, op string, req *transport.Request, result interface{}) error {
	// Rate limiting
	if c.options.RateLimiter != nil {
		if err := c.options.RateLimiter.Wait(ctx); err != nil {
			if hub := sentry.GetHubFromContext(ctx); hub != nil {
				hub.CaptureException(err)
			} else if c.options.SentryDSN != "" || c.options.SentryOptions != nil {
				sentry.CaptureException(err)
			}
			return err
		}
	}

	// Execute request
	start := time.Now()
	err := c.transport.Do(ctx, req, result)
	duration := time.Since(start)

	// Capture errors in Sentry
	if err != nil && (c.options.SentryDSN != "" || c.options.SentryOptions != nil) {
		capture := func(scope *sentry.Scope) {
			scope.SetTag("api.operation", op)
			scope.SetContext("api", map[string]interface{}{
				"method":   req.Method,
				"path":     req.Path,
				"duration": duration.String(),
			})
		}
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				capture(scope)
				hub.CaptureException(err)
			})
		} else {
			sentry.WithScope(func(scope *sentry.Scope) {
				capture(scope)
				sentry.CaptureException(err)
			})
		}
	}

	return err
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
