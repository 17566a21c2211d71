package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snippetvault/snippet-api/internal/core/ports"
)

// SnippetHandler handles HTTP requests for snippet operations.
type SnippetHandler struct {
	service ports.SnippetService
}

func NewSnippetHandler(service ports.SnippetService) *SnippetHandler {
	return &SnippetHandler{service: service}
}

// List handles GET /api/codes. Public: anonymous browsing is allowed.
//
// @Summary      List all snippets
// @Tags         codes
// @Produce      json
// @Success      200  {array}   snippetResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/codes [get]
func (h *SnippetHandler) List(c echo.Context) error {
	snippets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSnippetListResponse(snippets))
}

// Create handles POST /api/codes (admin only). The creator is taken from the
// token claims, never from the body.
//
// @Summary      Create a snippet
// @Tags         codes
// @Accept       json
// @Produce      json
// @Param        body  body      createSnippetRequest  true  "Snippet fields"
// @Success      200   {object}  snippetResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/codes [post]
func (h *SnippetHandler) Create(c echo.Context) error {
	var req createSnippetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	creatorID, _ := c.Get("user_id").(string)
	snippet, err := h.service.Create(c.Request().Context(), toCreateInput(req, creatorID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSnippetResponse(snippet))
}

// Update handles PUT /api/codes/:id (admin only). Only fields present in the
// body are changed.
//
// @Summary      Update a snippet
// @Tags         codes
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Snippet id"
// @Param        body  body      updateSnippetRequest  true  "Fields to change"
// @Success      200   {object}  snippetResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/codes/{id} [put]
func (h *SnippetHandler) Update(c echo.Context) error {
	var req updateSnippetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	snippet, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toSnippetResponse(snippet))
}

// Delete handles DELETE /api/codes/:id (admin only).
//
// @Summary      Delete a snippet
// @Tags         codes
// @Produce      json
// @Param        id  path      string  true  "Snippet id"
// @Success      200  {object}  msgResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/codes/{id} [delete]
func (h *SnippetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "Code deleted"})
}
