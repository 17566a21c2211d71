package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/snippetvault/snippet-api/internal/api/metrics"
	"github.com/snippetvault/snippet-api/internal/core/domain"
	"github.com/snippetvault/snippet-api/internal/core/ports"
)

// LanguageCache abstracts the Redis-backed language index cache.
type LanguageCache interface {
	// Get returns the cached index and whether it was present.
	Get(ctx context.Context) ([]string, bool, error)
	Set(ctx context.Context, languages []string) error
	Invalidate(ctx context.Context) error
}

type SnippetService struct {
	repo   ports.SnippetRepository
	cache  LanguageCache
	logger zerolog.Logger
}

func NewSnippetService(repo ports.SnippetRepository, cache LanguageCache, logger zerolog.Logger) *SnippetService {
	return &SnippetService{repo: repo, cache: cache, logger: logger}
}

func (s *SnippetService) List(ctx context.Context) ([]*domain.Snippet, error) {
	return s.repo.List(ctx)
}

// Create validates and persists a new snippet, stamping created_at server-side.
func (s *SnippetService) Create(ctx context.Context, input ports.CreateSnippetInput) (*domain.Snippet, error) {
	if err := validateRequired(input.Title, input.Code, input.Language); err != nil {
		return nil, err
	}

	snippet := &domain.Snippet{
		Title:    input.Title,
		Code:     input.Code,
		Language: input.Language,
		Category: input.Category,
	}
	if input.CreatorID != "" {
		snippet.CreatedBy = &domain.Creator{ID: input.CreatorID}
	}

	created, err := s.repo.Insert(ctx, snippet)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create snippet")
		return nil, err
	}

	metrics.SnippetsCreatedTotal.WithLabelValues(created.Language).Inc()
	s.invalidateLanguages(ctx)
	s.logger.Info().Str("id", created.ID).Str("language", created.Language).Msg("snippet created")
	return created, nil
}

// Update applies a partial patch. Provided-but-empty title, code or language
// would break the non-empty invariant and is rejected.
func (s *SnippetService) Update(ctx context.Context, id string, input ports.UpdateSnippetInput) (*domain.Snippet, error) {
	for _, f := range []struct {
		name  string
		value *string
	}{{"title", input.Title}, {"code", input.Code}, {"language", input.Language}} {
		if f.value != nil && *f.value == "" {
			return nil, fmt.Errorf("%w: %s must not be empty", domain.ErrValidation, f.name)
		}
	}

	patch := domain.SnippetPatch{
		Title:    input.Title,
		Code:     input.Code,
		Language: input.Language,
		Category: input.Category,
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.SnippetsMutatedTotal.WithLabelValues("update").Inc()
	if input.Language != nil {
		s.invalidateLanguages(ctx)
	}
	s.logger.Info().Str("id", id).Msg("snippet updated")
	return updated, nil
}

func (s *SnippetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.SnippetsMutatedTotal.WithLabelValues("delete").Inc()
	s.invalidateLanguages(ctx)
	s.logger.Info().Str("id", id).Msg("snippet deleted")
	return nil
}

// Languages returns the browsable language index, read through the cache.
// Cache failures degrade to a repository scan rather than failing the request.
func (s *SnippetService) Languages(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		langs, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("language cache read failed")
		} else if ok {
			metrics.LanguageCacheTotal.WithLabelValues("hit").Inc()
			return langs, nil
		} else {
			metrics.LanguageCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	langs, err := s.repo.Languages(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, langs); err != nil {
			s.logger.Warn().Err(err).Msg("language cache write failed")
		}
	}
	return langs, nil
}

func (s *SnippetService) invalidateLanguages(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("language cache invalidation failed")
	}
}

func validateRequired(title, code, language string) error {
	switch {
	case title == "":
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	case code == "":
		return fmt.Errorf("%w: code is required", domain.ErrValidation)
	case language == "":
		return fmt.Errorf("%w: language is required", domain.ErrValidation)
	}
	return nil
}
