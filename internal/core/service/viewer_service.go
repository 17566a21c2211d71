package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/snippetvault/snippet-api/internal/core/domain"
	"github.com/snippetvault/snippet-api/internal/core/ports"
)

// ViewerService lets admins inspect and remove viewer accounts. It only ever
// touches users holding the viewer role; admin accounts are out of reach.
type ViewerService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewViewerService(repo ports.UserRepository, logger zerolog.Logger) *ViewerService {
	return &ViewerService{repo: repo, logger: logger}
}

func (s *ViewerService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListByRole(ctx, domain.RoleViewer)
}

func (s *ViewerService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id, domain.RoleViewer); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("viewer deleted")
	return nil
}
