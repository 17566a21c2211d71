package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type createSnippetRequest struct {
	Title    string `json:"title"    validate:"required"`
	Code     string `json:"code"     validate:"required"`
	Language string `json:"language" validate:"required"`
	Category string `json:"category"`
}

// updateSnippetRequest is the partial-update body. Pointer fields distinguish
// "absent" from "set to empty"; a provided-but-empty required field fails
// validation instead of silently blanking the record.
type updateSnippetRequest struct {
	Title    *string `json:"title"    validate:"omitempty,min=1"`
	Code     *string `json:"code"     validate:"omitempty,min=1"`
	Language *string `json:"language" validate:"omitempty,min=1"`
	Category *string `json:"category"`
}

// Response-only types owned by the transport layer, kept separate from the
// domain types so the JSON contract is not coupled to internal changes.

type creatorResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type snippetResponse struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Code      string           `json:"code"`
	Language  string           `json:"language"`
	Category  string           `json:"category,omitempty"`
	CreatedBy *creatorResponse `json:"created_by"`
	CreatedAt time.Time        `json:"created_at"`
}
