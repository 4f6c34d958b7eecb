package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-motivation/internal/app"
)

// PreferencesHandler exposes the caller's preference record and favorites.
// The store never fails a request: when the backend is unavailable reads
// return defaults and writes are dropped.
type PreferencesHandler struct {
	store *app.PreferenceStore
}

// NewPreferencesHandler creates a preferences handler.
func NewPreferencesHandler(store *app.PreferenceStore) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

// GetPreferences handles GET /api/v1/preferences
//
// @Summary Get the caller's preferences
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Router /api/v1/preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	rec := h.store.Read(c.Request.Context(), middleware.GetProfile(c))

	c.JSON(http.StatusOK, dto.NewPreferencesResponse(rec))
}

// PatchPreferences handles PATCH /api/v1/preferences
// Fields absent from the body are left untouched.
//
// @Summary Update the caller's preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body dto.PreferencesPatchRequest true "Fields to change"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/preferences [patch]
func (h *PreferencesHandler) PatchPreferences(c *gin.Context) {
	var req dto.PreferencesPatchRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	if err := req.Validate(); err != nil {
		dto.HandleError(c, err)
		return
	}

	rec := h.store.Write(c.Request.Context(), middleware.GetProfile(c), req.ToDomain())

	c.JSON(http.StatusOK, dto.NewPreferencesResponse(rec))
}

// ClearPreferences handles DELETE /api/v1/preferences
// Removes the stored record so later reads return the defaults.
func (h *PreferencesHandler) ClearPreferences(c *gin.Context) {
	h.store.Clear(c.Request.Context(), middleware.GetProfile(c))

	c.Status(http.StatusNoContent)
}

// ListFavorites handles GET /api/v1/favorites
//
// @Summary List favorite quotes in insertion order
// @Tags favorites
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/favorites [get]
func (h *PreferencesHandler) ListFavorites(c *gin.Context) {
	rec := h.store.Read(c.Request.Context(), middleware.GetProfile(c))

	c.JSON(http.StatusOK, dto.NewQuoteResponses(rec.Favorites))
}

// AddFavorite handles POST /api/v1/favorites
// Adding a quote that is already a favorite is a no-op.
//
// @Summary Add a favorite quote
// @Tags favorites
// @Accept json
// @Produce json
// @Param body body dto.QuoteBody true "Quote"
// @Success 200 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/favorites [post]
func (h *PreferencesHandler) AddFavorite(c *gin.Context) {
	var body dto.QuoteBody
	if err := dto.BindAndValidate(c, &body); err != nil {
		dto.HandleError(c, err)
		return
	}

	favorites := h.store.AddFavorite(c.Request.Context(), middleware.GetProfile(c), body.ToDomain())

	c.JSON(http.StatusOK, dto.NewQuoteResponses(favorites))
}

// RemoveFavorite handles DELETE /api/v1/favorites/:id
// Removing an unknown id is a no-op.
//
// @Summary Remove a favorite quote
// @Tags favorites
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {array} dto.QuoteResponse
// @Router /api/v1/favorites/{id} [delete]
func (h *PreferencesHandler) RemoveFavorite(c *gin.Context) {
	favorites := h.store.RemoveFavorite(c.Request.Context(), middleware.GetProfile(c), c.Param("id"))

	c.JSON(http.StatusOK, dto.NewQuoteResponses(favorites))
}

// GetFavoriteStatus handles GET /api/v1/favorites/:id
func (h *PreferencesHandler) GetFavoriteStatus(c *gin.Context) {
	id := c.Param("id")

	c.JSON(http.StatusOK, dto.FavoriteStatusResponse{
		ID:       id,
		Favorite: h.store.IsFavorite(c.Request.Context(), middleware.GetProfile(c), id),
	})
}

// RegisterPreferencesRoutes registers preference and favorite routes.
func (h *PreferencesHandler) RegisterPreferencesRoutes(rg *gin.RouterGroup) {
	prefs := rg.Group("/preferences")
	prefs.GET("", h.GetPreferences)
	prefs.PATCH("", h.PatchPreferences)
	prefs.DELETE("", h.ClearPreferences)

	favorites := rg.Group("/favorites")
	favorites.GET("", h.ListFavorites)
	favorites.POST("", h.AddFavorite)
	favorites.GET("/:id", h.GetFavoriteStatus)
	favorites.DELETE("/:id", h.RemoveFavorite)
}
