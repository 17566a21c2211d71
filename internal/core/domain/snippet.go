package domain

import (
	"errors"
	"time"
)

var ErrSnippetNotFound = errors.New("snippet not found")
var ErrForbidden = errors.New("access forbidden")

// ErrValidation marks a request that is syntactically fine but semantically
// incomplete (missing title, code or language). Wrap it with the field detail.
var ErrValidation = errors.New("validation failed")

// Creator is the denormalized view of the user who created a snippet.
// Nil when the creator account has since been deleted.
type Creator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Snippet is a stored code sample. Title, code and language are mandatory;
// the set of distinct languages forms the browsable language index.
type Snippet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	Language  string    `json:"language"`
	Category  string    `json:"category,omitempty"`
	CreatedBy *Creator  `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// SnippetPatch carries a partial update. Nil fields keep their prior value;
// unset fields never overwrite (last write wins per field, no versioning).
type SnippetPatch struct {
	Title    *string
	Code     *string
	Language *string
	Category *string
}

// Empty reports whether the patch would change nothing.
func (p SnippetPatch) Empty() bool {
	return p.Title == nil && p.Code == nil && p.Language == nil && p.Category == nil
}
