package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snippetvault/snippet-api/internal/core/ports"
)

// ViewerHandler exposes viewer account management to admins.
type ViewerHandler struct {
	service ports.ViewerService
}

func NewViewerHandler(service ports.ViewerService) *ViewerHandler {
	return &ViewerHandler{service: service}
}

// List handles GET /api/viewers (admin only). Password hashes are excluded by
// the domain type's json tags.
//
// @Summary      List viewer accounts
// @Tags         viewers
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/viewers [get]
func (h *ViewerHandler) List(c echo.Context) error {
	viewers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, viewers)
}

// Delete handles DELETE /api/viewers/:id (admin only).
//
// @Summary      Delete a viewer account
// @Tags         viewers
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  msgResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/viewers/{id} [delete]
func (h *ViewerHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "Viewer deleted"})
}
