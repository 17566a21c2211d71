package ports

import (
	"context"

	"github.com/snippetvault/snippet-api/internal/core/domain"
)

// SnippetRepository defines persistence operations for snippets.
type SnippetRepository interface {
	// Insert persists a new snippet and returns it annotated with its creator.
	Insert(ctx context.Context, s *domain.Snippet) (*domain.Snippet, error)
	// List returns every snippet, newest first, each annotated with the creator
	// username. A deleted creator yields a nil CreatedBy.
	List(ctx context.Context) ([]*domain.Snippet, error)
	// Update applies the non-nil fields of patch and returns the updated
	// snippet. Returns domain.ErrSnippetNotFound when the id is unknown.
	Update(ctx context.Context, id string, patch domain.SnippetPatch) (*domain.Snippet, error)
	// Delete removes the snippet. Returns domain.ErrSnippetNotFound when the id
	// is unknown, including a repeated delete.
	Delete(ctx context.Context, id string) error
	// Languages returns the distinct non-empty language tags in the store.
	Languages(ctx context.Context) ([]string, error)
}
