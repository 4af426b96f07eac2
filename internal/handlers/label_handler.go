package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneywise/internal/services"
)

// LabelHandler handles label HTTP requests.
type LabelHandler struct {
	service services.LabelServicer
}

// NewLabelHandler creates a new label handler.
func NewLabelHandler(service services.LabelServicer) *LabelHandler {
	return &LabelHandler{service: service}
}

// GetUserTags godoc
// @Summary List a user's label tags
// @Description Returns the tag list of the label record assigned to the user
// @Tags labels
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /label/all/{email} [get]
func (h *LabelHandler) GetUserTags(c *gin.Context) {
	tags, err := h.service.GetUserTags(c.Param("email"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}
