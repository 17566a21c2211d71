package ports

import (
	"context"

	"github.com/snippetvault/snippet-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a viewer account. Admin accounts are never created
	// through registration; see EnsureAdmin.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token. Unknown username
	// and wrong password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// EnsureAdmin seeds the out-of-band admin account at startup. It is a
	// no-op when the username already exists.
	EnsureAdmin(ctx context.Context, username, password string) error
}
