package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lucrum/internal/categories"
)

// CategoryHandler serves the category vocabulary offered to clients.
type CategoryHandler struct {
	config categories.Config
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(config categories.Config) *CategoryHandler {
	return &CategoryHandler{config: config}
}

// GetCategories handles listing the category vocabulary.
// @Summary     Get categories
// @Description Get the category vocabulary for each transaction kind
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} categories.Config "Category vocabulary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.config})
}
