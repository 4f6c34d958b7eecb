package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/daily-motivation/internal/adapters/http/dto"
	"github.com/jsamuelsen/daily-motivation/internal/app"
	"github.com/jsamuelsen/daily-motivation/internal/domain"
)

// CatalogHandler serves the bundled reference content: categories, the
// searchable quote catalog and athlete profiles.
type CatalogHandler struct {
	service  *app.CatalogService
	pageSize int
}

// NewCatalogHandler creates a catalog handler. pageSize is the default
// number of catalog quotes per page.
func NewCatalogHandler(service *app.CatalogService, pageSize int) *CatalogHandler {
	if pageSize <= 0 {
		pageSize = dto.DefaultLimit
	}

	return &CatalogHandler{service: service, pageSize: pageSize}
}

// ListCategories handles GET /api/v1/categories
//
// @Summary List quote categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewCategoryResponses(h.service.Categories()))
}

// GetCategoryQuotes handles GET /api/v1/categories/:id/quotes
// A known category without bundled quotes returns an empty list.
//
// @Summary List the quotes of a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {array} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/categories/{id}/quotes [get]
func (h *CatalogHandler) GetCategoryQuotes(c *gin.Context) {
	quotes, err := h.service.CategoryQuotes(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// GetRandomCategoryQuote handles GET /api/v1/categories/:id/random
//
// @Summary Get a random quote of a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/categories/{id}/random [get]
func (h *CatalogHandler) GetRandomCategoryQuote(c *gin.Context) {
	quote, err := h.service.RandomCategoryQuote(c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// SearchCatalog handles GET /api/v1/catalog/quotes
// Filters by category and text, sorts by author and paginates with an
// opaque cursor.
//
// @Summary Search the quote catalog
// @Tags catalog
// @Produce json
// @Param q query string false "Text matched against content and author"
// @Param category query string false "Category, or all"
// @Param sort query string false "az or za"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedResponse[dto.CatalogQuoteResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/catalog/quotes [get]
func (h *CatalogHandler) SearchCatalog(c *gin.Context) {
	var req dto.CatalogSearchRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	results := h.service.Search(req.ToDomain())

	page, err := dto.Paginate(results, req.PaginationRequest, h.pageSize, func(q domain.CatalogQuote) string {
		return q.ID
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]dto.CatalogQuoteResponse, 0, len(page.Items))
	for _, q := range page.Items {
		items = append(items, dto.NewCatalogQuoteResponse(q))
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse[dto.CatalogQuoteResponse]{
		Items:      items,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
		Total:      page.Total,
	})
}

// GetRandomCatalogQuote handles GET /api/v1/catalog/random
// Picks one entry of the filtered catalog.
//
// @Summary Get a random catalog quote
// @Tags catalog
// @Produce json
// @Param q query string false "Text matched against content and author"
// @Param category query string false "Category, or all"
// @Success 200 {object} dto.CatalogQuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/catalog/random [get]
func (h *CatalogHandler) GetRandomCatalogQuote(c *gin.Context) {
	var req dto.CatalogSearchRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote, err := h.service.RandomSearchResult(req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCatalogQuoteResponse(quote))
}

// ListCatalogCategories handles GET /api/v1/catalog/categories
// Returns the categories the catalog actually uses, sorted.
func (h *CatalogHandler) ListCatalogCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DistinctCategories())
}

// ListAthletes handles GET /api/v1/athletes
//
// @Summary List athlete mindset profiles
// @Tags athletes
// @Produce json
// @Success 200 {array} dto.AthleteResponse
// @Router /api/v1/athletes [get]
func (h *CatalogHandler) ListAthletes(c *gin.Context) {
	athletes := h.service.Athletes()

	resp := make([]dto.AthleteResponse, 0, len(athletes))
	for _, a := range athletes {
		resp = append(resp, dto.NewAthleteResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// GetAthlete handles GET /api/v1/athletes/:slug
//
// @Summary Get an athlete mindset profile
// @Tags athletes
// @Produce json
// @Param slug path string true "Athlete slug"
// @Success 200 {object} dto.AthleteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/athletes/{slug} [get]
func (h *CatalogHandler) GetAthlete(c *gin.Context) {
	athlete, err := h.service.Athlete(c.Param("slug"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAthleteResponse(athlete))
}

// RegisterCatalogRoutes registers the category, catalog and athlete routes.
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.GET("", h.ListCategories)
	categories.GET("/:id/quotes", h.GetCategoryQuotes)
	categories.GET("/:id/random", h.GetRandomCategoryQuote)

	catalog := rg.Group("/catalog")
	catalog.GET("/quotes", h.SearchCatalog)
	catalog.GET("/random", h.GetRandomCatalogQuote)
	catalog.GET("/categories", h.ListCatalogCategories)

	athletes := rg.Group("/athletes")
	athletes.GET("", h.ListAthletes)
	athletes.GET("/:slug", h.GetAthlete)
}
