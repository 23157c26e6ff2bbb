package confide

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confide-social/confide/app"
)

// SessionClearer is satisfied by the persisted cookie jar; SignOut clears
// local cookies even when the server call fails.
type SessionClearer interface {
	Clear() error
}

// authService implements app.AuthService using the Confide API.
type authService struct {
	client *Client
	jar    SessionClearer
}

// NewAuthService creates an AuthService backed by the Confide API.
func NewAuthService(client *Client, jar SessionClearer) *authService {
	return &authService{client: client, jar: jar}
}

type sessionRecord struct {
	Username string `json:"username"`
}

func (s *authService) Check(_ context.Context) (app.Session, error) {
	data, err := s.client.Get("/api/auth/user", nil)
	if err != nil {
		return app.Session{}, fmt.Errorf("checking session: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return app.Session{}, fmt.Errorf("parsing session: %w", err)
	}
	return app.Session{Username: rec.Username}, nil
}

type signinBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

func (s *authService) SignIn(_ context.Context, username, password string, remember bool) (app.Session, error) {
	data, err := s.client.Post("/api/auth/signin", signinBody{
		Username: strings.TrimSpace(username),
		Password: password,
		Remember: remember,
	})
	if err != nil {
		return app.Session{}, fmt.Errorf("signing in: %w", err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return app.Session{}, fmt.Errorf("parsing signin response: %w", err)
	}
	return app.Session{Username: rec.Username}, nil
}

type registerBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *authService) Register(_ context.Context, username, email, password string) error {
	_, err := s.client.Post("/api/users/register", registerBody{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	return nil
}

func (s *authService) SignOut(_ context.Context) error {
	_, err := s.client.Post("/api/auth/logout", nil)
	if clearErr := s.jar.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	if err != nil {
		return fmt.Errorf("signing out: %w", err)
	}
	return nil
}
