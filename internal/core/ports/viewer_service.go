package ports

import (
	"context"

	"github.com/snippetvault/snippet-api/internal/core/domain"
)

// ViewerService manages non-privileged accounts on behalf of admins.
type ViewerService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}
