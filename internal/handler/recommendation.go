package handler

import (
	"net/http"

	"healthplatform/internal/service"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler interface {
	GetRecommendation(c *gin.Context)
}

type recommendationHandler struct{}

func NewRecommendationHandler() RecommendationHandler {
	return &recommendationHandler{}
}

// GetRecommendation handles GET /recommendations/:label
func (h *recommendationHandler) GetRecommendation(c *gin.Context) {
	label := c.Param("label")
	c.JSON(http.StatusOK, gin.H{
		"label":          label,
		"recommendation": service.Recommend(label),
	})
}
