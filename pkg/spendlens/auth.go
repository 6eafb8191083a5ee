package spendlens

import (
	"context"

	"github.com/spendlens/spendlens-go/internal/auth"
	internalTypes "github.com/spendlens/spendlens-go/internal/types"
)

// authService implements the AuthService interface
type authService struct {
	client  *Client
	service *auth.Service
}

// newAuthService creates a new auth service
func newAuthService(client *Client) *authService {
	return &authService{
		client: client,
		service: auth.NewService(
			client.baseURL,
			client.httpClient,
			client.options.Logger,
		),
	}
}

// convertSession converts internal types.Session to spendlens.Session
func (a *authService) convertSession(s *internalTypes.Session) *Session {
	if s == nil {
		return nil
	}
	return &Session{
		UserID:    s.UserID,
		Email:     s.Email,
		CSRFToken: s.CSRFToken,
	}
}

// Login establishes a session with existing credentials and injects the
// issued CSRF token into the transport.
func (a *authService) Login(ctx context.Context, email, password string) error {
	if err := a.service.Login(ctx, email, password); err != nil {
		return err
	}

	session, err := a.service.GetSession()
	if err != nil {
		return err
	}

	a.client.transport.SetSession(session)
	return nil
}

// Signup creates an account, which also establishes a session
func (a *authService) Signup(ctx context.Context, email, password string) error {
	if err := a.service.Signup(ctx, email, password); err != nil {
		return err
	}

	session, err := a.service.GetSession()
	if err != nil {
		return err
	}

	a.client.transport.SetSession(session)
	return nil
}

// Logout ends the session and clears the stored CSRF token
func (a *authService) Logout(ctx context.Context) error {
	err := a.service.Logout(ctx)
	a.client.transport.SetSession(nil)
	return err
}

// Session returns the current session
func (a *authService) Session() (*Session, error) {
	session, err := a.service.GetSession()
	if err != nil {
		return nil, err
	}
	return a.convertSession(session), nil
}
