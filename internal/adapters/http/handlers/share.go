package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-motivation/internal/app"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// ShareHandler builds share payloads.
type ShareHandler struct {
	service *app.ShareService
}

// NewShareHandler creates a share handler.
func NewShareHandler(service *app.ShareService) *ShareHandler {
	return &ShareHandler{service: service}
}

// Share handles POST /api/v1/share
// Platforms without a direct share target fall back to copying the link
// and carry a message explaining that.
//
// @Summary Build a share link for a quote
// @Tags share
// @Accept json
// @Produce json
// @Param body body dto.ShareRequest true "Quote and platform"
// @Success 200 {object} dto.ShareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/share [post]
func (h *ShareHandler) Share(c *gin.Context) {
	var req dto.ShareRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	link, err := h.service.Share(c.Request.Context(), req.Quote.ToDomain(), domain.SharePlatform(req.Platform))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewShareResponse(link))
}

// RegisterShareRoutes registers the share route.
func (h *ShareHandler) RegisterShareRoutes(rg *gin.RouterGroup) {
	rg.POST("/share", h.Share)
}
