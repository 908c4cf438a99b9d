package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/orenlab/fail2ban-api/pkg/api/models"
	"github.com/orenlab/fail2ban-api/pkg/fail2ban"
)

// VersionHandler handles fail2ban version requests
type VersionHandler struct {
	client fail2ban.StatusClient
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(client fail2ban.StatusClient) *VersionHandler {
	return &VersionHandler{
		client: client,
	}
}

// GetVersion handles GET /version
// Returns the fail2ban service version
func (h *VersionHandler) GetVersion(c *gin.Context) {
	version, err := h.client.Version(c.Request.Context())
	if err != nil {
		log.Errorf("Failed to retrieve fail2ban version: %v", err)
		writeClientError(c, err)
		return
	}

	response := models.VersionResponse{
		Version: version.Version,
	}

	c.JSON(http.StatusOK, response)
}
