// Integration tests exercising the fully assembled server (middleware,
// routes, handlers) against a mocked fail2ban client.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orenlab/fail2ban-api/pkg/api/models"
	"github.com/orenlab/fail2ban-api/pkg/fail2ban"
)

// mockStatusClient provides a minimal fail2ban.StatusClient for API-level
// integration tests.
type mockStatusClient struct {
	err error
}

func (m *mockStatusClient) Status(ctx context.Context) (*fail2ban.ServiceStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &fail2ban.ServiceStatus{
		NumberOfJails: 1,
		JailList:      []string{"sshd"},
	}, nil
}

func (m *mockStatusClient) JailStatus(ctx context.Context, jailName string) (*fail2ban.JailStatus, error) {
	if m.err != nil {
		return nil, m.err
	}
	if jailName != "sshd" {
		return nil, fail2ban.ErrJailNotFound
	}
	return &fail2ban.JailStatus{
		JailName: "sshd",
		Filter:   fail2ban.JailFilter{CurrentlyFailed: 1, TotalFailed: 10},
		Actions:  fail2ban.JailActions{CurrentlyBanned: 1, TotalBanned: 5, BannedIPList: []string{"192.0.2.10"}},
	}, nil
}

func (m *mockStatusClient) Version(ctx context.Context) (*fail2ban.VersionInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &fail2ban.VersionInfo{Version: "1.0.2"}, nil
}

func newTestServer(t *testing.T, client fail2ban.StatusClient) *Server {
	cfg := DefaultConfig()
	cfg.EnableMetrics = true

	server, err := NewAPIServer(cfg, client)
	require.NoError(t, err)
	return server
}

func performRequest(server *Server, method string, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(w, req)
	return w
}

// TestIntegration_StatusEndpoints tests the three fail2ban endpoints
// through the full middleware chain
func TestIntegration_StatusEndpoints(t *testing.T) {
	server := newTestServer(t, &mockStatusClient{})

	w := performRequest(server, "GET", "/status")
	assert.Equal(t, http.StatusOK, w.Code)

	var status models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, 1, status.NumberOfJails)
	assert.Equal(t, []string{"sshd"}, status.JailList)

	w = performRequest(server, "GET", "/status/sshd")
	assert.Equal(t, http.StatusOK, w.Code)

	var jail models.JailStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &jail))
	assert.Equal(t, "sshd", jail.JailName)
	assert.Equal(t, []string{"192.0.2.10"}, jail.Actions.BannedIPList)

	w = performRequest(server, "GET", "/version")
	assert.Equal(t, http.StatusOK, w.Code)

	var version models.VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &version))
	assert.Equal(t, "1.0.2", version.Version)
}

// TestIntegration_ErrorMapping tests the error taxonomy end to end
func TestIntegration_ErrorMapping(t *testing.T) {
	t.Run("unknown jail", func(t *testing.T) {
		server := newTestServer(t, &mockStatusClient{})
		w := performRequest(server, "GET", "/status/unknownjail")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid jail name", func(t *testing.T) {
		server := newTestServer(t, &mockStatusClient{})
		w := performRequest(server, "GET", "/status/bad;name")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service unavailable", func(t *testing.T) {
		server := newTestServer(t, &mockStatusClient{err: fail2ban.ErrUnavailable})
		for _, path := range []string{"/status", "/status/sshd", "/version"} {
			w := performRequest(server, "GET", path)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		}
	})

	t.Run("parse error", func(t *testing.T) {
		server := newTestServer(t, &mockStatusClient{err: &fail2ban.ParseError{Reason: "label not found"}})
		w := performRequest(server, "GET", "/status")
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

// TestIntegration_Health tests the liveness endpoint
func TestIntegration_Health(t *testing.T) {
	server := newTestServer(t, &mockStatusClient{})

	w := performRequest(server, "GET", "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var response models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
}

// TestIntegration_Metrics tests that request metrics are exposed
func TestIntegration_Metrics(t *testing.T) {
	server := newTestServer(t, &mockStatusClient{})

	// Generate at least one sample before scraping.
	performRequest(server, "GET", "/status")

	w := performRequest(server, "GET", "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fail2ban_api_requests_total")
}

// TestIntegration_MetricsDisabled tests that /metrics is absent when
// disabled in config
func TestIntegration_MetricsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableMetrics = false

	server, err := NewAPIServer(cfg, &mockStatusClient{})
	require.NoError(t, err)

	w := performRequest(server, "GET", "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
