package app

import "context"

// Session identifies the authenticated user for the rest of the process.
type Session struct {
	Username string
}

// AuthService handles login, registration, and session checks against the
// cookie-based backend session.
type AuthService interface {
	// Check resolves the current session. Returns domain.ErrUnauthorized
	// (wrapped) when no valid session exists.
	Check(ctx context.Context) (Session, error)

	// SignIn submits credentials and establishes a session cookie.
	SignIn(ctx context.Context, username, password string, remember bool) (Session, error)

	// Register creates a new account. The user signs in afterwards.
	Register(ctx context.Context, username, email, password string) error

	// SignOut invalidates the session server-side and clears local cookies.
	SignOut(ctx context.Context) error
}
