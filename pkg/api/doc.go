// Package api provides a RESTful HTTP API server exposing fail2ban
// statistics as JSON.
//
// The API server exposes endpoints for:
//   - Overall fail2ban service status (jail count and names)
//   - Per-jail status (filter and action counters, banned IPs)
//   - fail2ban version
//   - Health checks and prometheus metrics
//
// # Architecture
//
// The API server is built on the Gin web framework. Each request is
// translated into a single fail2ban-client invocation through the
// fail2ban package; no state is shared between requests and every
// operation is read-only and idempotent.
//
// # Example Usage
//
// Basic server setup:
//
//	client := fail2ban.NewClient(fail2ban.DefaultConfig())
//
//	server, err := api.NewAPIServer(api.DefaultConfig(), client)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := server.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer server.Stop()
//
// # Endpoints
//
// fail2ban status:
//   - GET /status             - Overall service status
//   - GET /status/:jail_name  - Status of a single jail
//   - GET /version            - fail2ban version
//
// Operational:
//   - GET /health   - Liveness check
//   - GET /metrics  - Prometheus exposition (when enabled)
//
// # Error Responses
//
// Errors are returned as JSON bodies with a machine-readable error code:
//   - 400: the jail name failed input sanitization
//   - 404: fail2ban does not know the requested jail
//   - 502: fail2ban-client output format was not recognized
//   - 503: fail2ban-client failed, timed out or is not installed
//
// # Middleware
//
// The server includes the following middleware:
//   - Recovery: Catches panics and prevents server crashes
//   - Logger: Logs all HTTP requests with timing information
//   - Metrics: Prometheus request counters and latency histograms
//   - CORS: Cross-origin resource sharing for web UIs (when enabled)
package api
