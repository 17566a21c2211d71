package handler

import (
	"github.com/snippetvault/snippet-api/internal/core/domain"
	"github.com/snippetvault/snippet-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSnippetRequest, creatorID string) ports.CreateSnippetInput {
	return ports.CreateSnippetInput{
		Title:     req.Title,
		Code:      req.Code,
		Language:  req.Language,
		Category:  req.Category,
		CreatorID: creatorID,
	}
}

func toUpdateInput(req updateSnippetRequest) ports.UpdateSnippetInput {
	return ports.UpdateSnippetInput{
		Title:    req.Title,
		Code:     req.Code,
		Language: req.Language,
		Category: req.Category,
	}
}

// --- Domain → HTTP response ---

func toSnippetResponse(s *domain.Snippet) snippetResponse {
	resp := snippetResponse{
		ID:        s.ID,
		Title:     s.Title,
		Code:      s.Code,
		Language:  s.Language,
		Category:  s.Category,
		CreatedAt: s.CreatedAt.UTC(),
	}
	if s.CreatedBy != nil {
		resp.CreatedBy = &creatorResponse{
			ID:       s.CreatedBy.ID,
			Username: s.CreatedBy.Username,
		}
	}
	return resp
}

func toSnippetListResponse(snippets []*domain.Snippet) []snippetResponse {
	out := make([]snippetResponse, len(snippets))
	for i, s := range snippets {
		out[i] = toSnippetResponse(s)
	}
	return out
}
