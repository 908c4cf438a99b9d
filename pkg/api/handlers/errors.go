package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orenlab/fail2ban-api/pkg/api/models"
	"github.com/orenlab/fail2ban-api/pkg/fail2ban"
)

// writeClientError maps a fail2ban client error to an HTTP error response:
// invalid jail name -> 400, unknown jail -> 404, unrecognized output
// format -> 502, anything else -> 503.
func writeClientError(c *gin.Context, err error) {
	var parseErr *fail2ban.ParseError

	switch {
	case errors.Is(err, fail2ban.ErrInvalidJailName):
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			http.StatusBadRequest,
			"invalid_jail_name",
			"Invalid jail name provided",
			nil,
		))
	case errors.Is(err, fail2ban.ErrJailNotFound):
		c.JSON(http.StatusNotFound, models.NewErrorResponse(
			http.StatusNotFound,
			"jail_not_found",
			"The requested jail does not exist",
			nil,
		))
	case errors.As(err, &parseErr):
		c.JSON(http.StatusBadGateway, models.NewErrorResponse(
			http.StatusBadGateway,
			"parse_error",
			"Unrecognized fail2ban-client output format",
			parseErr.Error(),
		))
	default:
		c.JSON(http.StatusServiceUnavailable, models.NewErrorResponse(
			http.StatusServiceUnavailable,
			"service_unavailable",
			"The fail2ban service is unavailable",
			err.Error(),
		))
	}
}
