package ports

import (
	"context"

	"github.com/snippetvault/snippet-api/internal/core/domain"
)

// CreateSnippetInput carries all data needed to create a snippet.
type CreateSnippetInput struct {
	Title     string
	Code      string
	Language  string
	Category  string
	CreatorID string
}

// UpdateSnippetInput is the partial-update DTO. Nil fields are left untouched.
type UpdateSnippetInput struct {
	Title    *string
	Code     *string
	Language *string
	Category *string
}

// SnippetService defines use-case operations for snippets.
type SnippetService interface {
	List(ctx context.Context) ([]*domain.Snippet, error)
	Create(ctx context.Context, input CreateSnippetInput) (*domain.Snippet, error)
	Update(ctx context.Context, id string, input UpdateSnippetInput) (*domain.Snippet, error)
	Delete(ctx context.Context, id string) error
	// Languages returns the browsable language index.
	Languages(ctx context.Context) ([]string, error)
}
