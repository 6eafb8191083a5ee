package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/spendlens/spendlens-go/internal/types"
)

const (
	apiPrefix  = "/api/"
	authPrefix = "/api/auth/"

	csrfHeaderKey = "X-CSRF-Token"
	contentType   = "application/json"
)

// Request describes a single REST call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// RESTTransport handles HTTP communication with the SpendLens API.
// Credentials travel as a session cookie held by the HTTP client's cookie
// jar; the CSRF token is read from the injected session.
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	session     *types.Session
	logger      types.Logger
	hooks       *types.Hooks
}

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	// Set defaults
	if opts.BaseURL == "" {
		opts.BaseURL = types.DefaultBaseURL
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait
		// A 401 is a session-ended signal, never a transient condition.
		retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
			if resp != nil && resp.StatusCode == http.StatusUnauthorized {
				return false, nil
			}
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	// Set default headers
	headers := map[string]string{
		"Accept":       contentType,
		"Content-Type": contentType,
		"User-Agent":   types.UserAgent,
	}

	// Merge custom headers
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Do executes a REST request and unmarshals the JSON response into result.
func (t *RESTTransport) Do(ctx context.Context, req *Request, result interface{}) error {
	// Marshal body
	var bodyReader io.Reader
	if req.Body != nil {
		body, err := json.Marshal(req.Body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		bodyReader = bytes.NewReader(body)
	}

	// Build URL
	reqURL := t.baseURL + req.Path
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}

	// Create HTTP request
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, reqURL, bodyReader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	// Set headers unless the caller already pinned one
	for k, v := range t.headers {
		if httpReq.Header.Get(k) == "" {
			httpReq.Header.Set(k, v)
		}
	}

	// Attach CSRF token on state-changing calls to protected paths.
	// Auth endpoints never receive the header: session establishment
	// precedes token issuance.
	if isMutation(req.Method) && isCSRFProtected(req.Path) {
		if t.session != nil && t.session.CSRFToken != "" {
			httpReq.Header.Set(csrfHeaderKey, t.session.CSRFToken)
		}
	}

	// Call request hook
	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	// Log request
	if t.logger != nil {
		t.logger.Debug("API request", "method", req.Method, "path", req.Path)
	}

	// Execute request
	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return err
	}
	defer resp.Body.Close()

	// Call response hook
	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	// Log response
	if t.logger != nil {
		t.logger.Debug("API response", "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	// Check status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return t.handleHTTPError(resp.StatusCode, respBody)
	}

	// Unmarshal data
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to unmarshal result")
		}
	}

	return nil
}

// SetSession sets the session
func (t *RESTTransport) SetSession(session *types.Session) {
	t.session = session
}

// Session returns the current session
func (t *RESTTransport) Session() *types.Session {
	return t.session
}

// isMutation reports whether a method is state-changing.
func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// isCSRFProtected reports whether a path is under the resource namespace.
func isCSRFProtected(path string) bool {
	return strings.HasPrefix(path, apiPrefix) && !strings.HasPrefix(path, authPrefix)
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		// Convert to retryable request
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// handleHTTPError maps non-2xx responses onto the error taxonomy
func (t *RESTTransport) handleHTTPError(statusCode int, body []byte) error {
	// Try to parse error response
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"error_code"`
	}

	_ = json.Unmarshal(body, &errResp)

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}

	// Map status codes to errors
	switch statusCode {
	case http.StatusUnauthorized:
		return types.ErrUnauthorized
	case http.StatusConflict:
		if msg == "" {
			msg = "resource is referenced by existing expenses"
		}
		return &types.Error{
			Code:       "CONFLICT",
			Message:    msg,
			StatusCode: statusCode,
			Err:        types.ErrConflict,
		}
	case http.StatusNotFound:
		return types.ErrNotFound
	case http.StatusTooManyRequests:
		return types.ErrRateLimited
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return types.ErrTimeout
	case http.StatusBadRequest:
		return &types.Error{
			Code:       "BAD_REQUEST",
			Message:    msg,
			StatusCode: statusCode,
		}
	default:
		if statusCode >= 500 {
			baseMsg := fmt.Sprintf("server error: %d", statusCode)
			if desc := httpStatusDescription(statusCode); desc != "" {
				baseMsg = fmt.Sprintf("server error: %d (%s)", statusCode, desc)
			}
			if msg != "" {
				baseMsg = fmt.Sprintf("%s: %s", baseMsg, msg)
			}

			return &types.Error{
				Code:       "SERVER_ERROR",
				Message:    baseMsg,
				StatusCode: statusCode,
				Err:        types.ErrServerError,
			}
		}
		return &types.Error{
			Code:       "HTTP_ERROR",
			Message:    fmt.Sprintf("HTTP error: %d", statusCode),
			StatusCode: statusCode,
		}
	}
}

// httpStatusDescription returns a human-readable description for common HTTP
// status codes, including CDN-specific ones like 525.
func httpStatusDescription(statusCode int) string {
	descriptions := map[int]string{
		500: "Internal Server Error",
		501: "Not Implemented",
		502: "Bad Gateway",
		503: "Service Unavailable",
		504: "Gateway Timeout",
		520: "Web Server Error",
		521: "Web Server Is Down",
		522: "Connection Timed Out",
		523: "Origin Is Unreachable",
		524: "A Timeout Occurred",
		525: "SSL Handshake Failed",
		526: "Invalid SSL Certificate",
		530: "Origin DNS Error",
	}
	return descriptions[statusCode]
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
