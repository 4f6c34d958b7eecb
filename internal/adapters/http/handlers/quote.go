package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/middleware"
	"github.com/jsamuelsen/daily-motivation/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// GetRandomQuote handles GET /api/v1/quotes/random
// Returns a quote from the remote providers, or a bundled quote when every
// provider failed. With preferNew=true recently served quotes are avoided.
//
// @Summary Get a random quote
// @Description Fetches a quote from a randomly chosen provider
// @Tags quotes
// @Produce json
// @Param preferNew query bool false "Avoid recently served quotes"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quotes/random [get]
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	var req dto.RandomQuoteRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote := h.service.NewQuote(c.Request.Context(), req.PreferNew)

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetQuoteOfTheDay handles GET /api/v1/quotes/today
// Returns the caller's quote for the current local date.
//
// @Summary Get the quote of the day
// @Tags quotes
// @Produce json
// @Param X-User-ID header string false "Profile"
// @Success 200 {object} dto.QuoteResponse
// @Router /api/v1/quotes/today [get]
func (h *QuoteHandler) GetQuoteOfTheDay(c *gin.Context) {
	quote := h.service.QuoteOfTheDay(c.Request.Context(), middleware.GetProfile(c))

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/random", h.GetRandomQuote)
	quotes.GET("/today", h.GetQuoteOfTheDay)
}
