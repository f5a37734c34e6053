package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lendly/service-rental/internal/application"
	"github.com/lendly/service-rental/internal/response"
)

// CategoryHandler handles HTTP requests for catalog browsing. The
// catalog is read-only and public.
type CategoryHandler struct {
	categories *application.CategoryService
	items      *application.ItemService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories *application.CategoryService, items *application.ItemService) *CategoryHandler {
	return &CategoryHandler{categories: categories, items: items}
}

// RegisterRoutes registers all category routes on the given router group.
func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:catId", h.Get)
		categories.GET("/:catId/items", h.ListItems)
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	result, err := h.categories.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get handles GET /categories/:catId.
func (h *CategoryHandler) Get(c *gin.Context) {
	catID, err := strconv.ParseInt(c.Param("catId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	result, err := h.categories.Get(c.Request.Context(), catID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListItems handles GET /categories/:catId/items.
func (h *CategoryHandler) ListItems(c *gin.Context) {
	catID, err := strconv.ParseInt(c.Param("catId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if _, err := h.categories.Get(c.Request.Context(), catID); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.items.ListByCategory(c.Request.Context(), catID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
