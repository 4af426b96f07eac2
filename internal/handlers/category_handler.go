package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneywise/internal/services"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	service services.CategoryServicer
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List godoc
// @Summary List categories
// @Description Returns the full set of transaction categories
// @Tags categories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /category/all [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
