package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielmerja/stnh/internal/store"
)

type CategoryHandler struct {
	categories *store.Categories
}

func NewCategoryHandler(categories *store.Categories) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// GetCategories returns the fixed category set ordered by name. The store
// fails soft, so this always answers 200 with an array.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.categories.List(c.Request.Context()))
}
