package ports

import (
	"context"

	"github.com/snippetvault/snippet-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrDuplicateUsername when the
	// username is already taken (enforced by a unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListByRole returns all users holding the given role.
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	// Delete removes the user with the given id and role. Returns
	// domain.ErrUserNotFound when no such user exists.
	Delete(ctx context.Context, id, role string) error
}
