package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orenlab/fail2ban-api/pkg/api/handlers"
)

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	// Create handlers
	statusHandler := handlers.NewStatusHandler(s.client)
	versionHandler := handlers.NewVersionHandler(s.client)
	healthHandler := handlers.NewHealthHandler()

	// fail2ban status endpoints
	s.router.GET("/status", statusHandler.GetStatus)
	s.router.GET("/status/:jail_name", statusHandler.GetJailStatus)
	s.router.GET("/version", versionHandler.GetVersion)

	// Operational endpoints
	s.router.GET("/health", healthHandler.GetHealth)
	if s.config.EnableMetrics {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
