package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orenlab/fail2ban-api/pkg/api/models"
)

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth handles GET /health
// Simple liveness check; it does not touch fail2ban-client.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := models.HealthResponse{
		Status:  "ok",
		Message: "API server is healthy",
	}

	c.JSON(http.StatusOK, response)
}
