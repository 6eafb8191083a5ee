package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/spendlens/spendlens-go/internal/types"
)

const (
	loginEndpoint  = "/api/auth/login"
	signupEndpoint = "/api/auth/signup"
	logoutEndpoint = "/api/auth/logout"
)

// Service handles session lifecycle requests. Auth endpoints are CSRF-exempt:
// the token is issued here, on successful login or signup, and the session
// cookie is captured by the HTTP client's cookie jar.
type Service struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	session    *types.Session
	logger     types.Logger
}

// NewService creates a new auth service
func NewService(baseURL string, httpClient *http.Client, logger types.Logger) *Service {
	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
		"User-Agent":   types.UserAgent,
		"X-Client-ID":  uuid.New().String(),
	}

	return &Service{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
		logger:     logger,
	}
}

// Login establishes a session with existing credentials
func (s *Service) Login(ctx context.Context, email, password string) error {
	return s.establishSession(ctx, loginEndpoint, email, password)
}

// Signup creates an account and establishes a session
func (s *Service) Signup(ctx context.Context, email, password string) error {
	return s.establishSession(ctx, signupEndpoint, email, password)
}

// Logout ends the session and clears the stored CSRF token
func (s *Service) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+logoutEndpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create logout request")
	}

	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "logout request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// The local session is gone either way
	s.session = nil

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &types.Error{
			Code:       "LOGOUT_FAILED",
			Message:    fmt.Sprintf("logout failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	if s.logger != nil {
		s.logger.Info("Logout successful")
	}

	return nil
}

// GetSession returns the current session
func (s *Service) GetSession() (*types.Session, error) {
	if s.session == nil {
		return nil, types.ErrNotAuthenticated
	}
	return s.session, nil
}

// SetSession sets the current session
func (s *Service) SetSession(session *types.Session) {
	s.session = session
}

// establishSession performs the login or signup request
func (s *Service) establishSession(ctx context.Context, endpoint, email, password string) error {
	reqBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	// Marshal request
	body, err := json.Marshal(reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to marshal auth request")
	}

	// Create HTTP request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create auth request")
	}

	// Set headers
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	// Log request
	if s.logger != nil {
		s.logger.Debug("Auth request", "endpoint", endpoint, "email", email)
	}

	// Execute request
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "auth request failed")
	}
	defer resp.Body.Close()

	// Read response
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read auth response")
	}

	// Log response
	if s.logger != nil {
		s.logger.Debug("Auth response", "status", resp.StatusCode)
	}

	// Parse response
	var authResp authResponse
	if err := json.Unmarshal(respBody, &authResp); err != nil {
		return errors.Wrap(err, "failed to parse auth response")
	}

	// Check for errors
	if authResp.ErrorCode != "" {
		if authResp.ErrorCode == "INVALID_CREDENTIALS" {
			return types.ErrLoginFailed
		}
		return &types.Error{
			Code:    authResp.ErrorCode,
			Message: authResp.Message,
		}
	}

	// Check status
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusUnauthorized {
			return types.ErrLoginFailed
		}
		return &types.Error{
			Code:       "AUTH_FAILED",
			Message:    fmt.Sprintf("auth failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	// Extract the CSRF token issued for the new session
	if authResp.CSRFToken == "" {
		return errors.New("no CSRF token in auth response")
	}

	// Create session
	s.session = &types.Session{
		UserID:    authResp.User.ID,
		Email:     email,
		CSRFToken: authResp.CSRFToken,
	}

	if s.logger != nil {
		s.logger.Info("Session established", "email", email)
	}

	return nil
}

// authResponse represents the login/signup API response
type authResponse struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
	CSRFToken string `json:"csrfToken"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}
