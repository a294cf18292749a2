package ports

import (
	"context"

	"github.com/VarshaKulal/CODECRAFT-FS-02/internal/core/domain"
)

// AuthService implements the login/session lifecycle: registration, login,
// and logout. Session validation lives on the SessionStore and is performed
// by the transport layer's authentication middleware.
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	// Login verifies credentials and establishes a new session. Unknown
	// usernames and wrong passwords both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Logout destroys the session for token. Idempotent.
	Logout(ctx context.Context, token string) error
}
