package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snippetvault/snippet-api/internal/core/ports"
)

// LanguageHandler serves the browsable language index.
type LanguageHandler struct {
	service ports.SnippetService
}

func NewLanguageHandler(service ports.SnippetService) *LanguageHandler {
	return &LanguageHandler{service: service}
}

// List handles GET /api/languages.
//
// @Summary      List distinct snippet languages
// @Tags         codes
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  errorResponse
// @Router       /api/languages [get]
func (h *LanguageHandler) List(c echo.Context) error {
	languages, err := h.service.Languages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, languages)
}
