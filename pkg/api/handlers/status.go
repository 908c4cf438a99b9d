package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/orenlab/fail2ban-api/pkg/api/models"
	"github.com/orenlab/fail2ban-api/pkg/fail2ban"
)

// StatusHandler handles fail2ban status requests
type StatusHandler struct {
	client fail2ban.StatusClient
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(client fail2ban.StatusClient) *StatusHandler {
	return &StatusHandler{
		client: client,
	}
}

// GetStatus handles GET /status
// Returns the overall fail2ban service status
func (h *StatusHandler) GetStatus(c *gin.Context) {
	status, err := h.client.Status(c.Request.Context())
	if err != nil {
		log.Errorf("Failed to retrieve fail2ban status: %v", err)
		writeClientError(c, err)
		return
	}

	response := models.StatusResponse{
		NumberOfJails: status.NumberOfJails,
		JailList:      status.JailList,
	}

	c.JSON(http.StatusOK, response)
}

// GetJailStatus handles GET /status/:jail_name
// Returns the status of a single jail
func (h *StatusHandler) GetJailStatus(c *gin.Context) {
	jailName := c.Param("jail_name")

	// Reject unsafe names before anything reaches the subprocess.
	if !fail2ban.ValidateJailName(jailName) {
		log.Errorf("Invalid jail name provided: %q", jailName)
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest,
			"invalid_jail_name",
			"Invalid jail name provided",
			nil,
		))
		return
	}

	status, err := h.client.JailStatus(c.Request.Context(), jailName)
	if err != nil {
		log.Errorf("Failed to retrieve status for jail %q: %v", jailName, err)
		writeClientError(c, err)
		return
	}

	response := models.JailStatusResponse{
		JailName: status.JailName,
		Filter: models.JailFilterResponse{
			CurrentlyFailed: status.Filter.CurrentlyFailed,
			TotalFailed:     status.Filter.TotalFailed,
			FileList:        status.Filter.FileList,
		},
		Actions: models.JailActionsResponse{
			CurrentlyBanned: status.Actions.CurrentlyBanned,
			TotalBanned:     status.Actions.TotalBanned,
			BannedIPList:    status.Actions.BannedIPList,
		},
	}

	c.JSON(http.StatusOK, response)
}
