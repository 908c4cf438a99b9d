package handlers

import (
	"context"

	"github.com/orenlab/fail2ban-api/pkg/fail2ban"
)

// MockStatusClient is a mock implementation of fail2ban.StatusClient for
// handler testing. It counts invocations so tests can assert that input
// validation short-circuits before the client is reached.
type MockStatusClient struct {
	status  *fail2ban.ServiceStatus
	jails   map[string]*fail2ban.JailStatus
	version *fail2ban.VersionInfo
	err     error

	Invocations int
}

func NewMockStatusClient() *MockStatusClient {
	return &MockStatusClient{
		status: &fail2ban.ServiceStatus{
			NumberOfJails: 2,
			JailList:      []string{"sshd", "nginx-http-auth"},
		},
		jails: map[string]*fail2ban.JailStatus{
			"sshd": {
				JailName: "sshd",
				Filter: fail2ban.JailFilter{
					CurrentlyFailed: 5,
					TotalFailed:     1280,
					FileList:        "/var/log/auth.log",
				},
				Actions: fail2ban.JailActions{
					CurrentlyBanned: 2,
					TotalBanned:     75,
					BannedIPList:    []string{"192.0.2.10", "198.51.100.7"},
				},
			},
		},
		version: &fail2ban.VersionInfo{Version: "1.0.2"},
	}
}

func (m *MockStatusClient) SetError(err error) {
	m.err = err
}

func (m *MockStatusClient) Status(ctx context.Context) (*fail2ban.ServiceStatus, error) {
	m.Invocations++
	if m.err != nil {
		return nil, m.err
	}
	return m.status, nil
}

func (m *MockStatusClient) JailStatus(ctx context.Context, jailName string) (*fail2ban.JailStatus, error) {
	m.Invocations++
	if m.err != nil {
		return nil, m.err
	}
	jail, ok := m.jails[jailName]
	if !ok {
		return nil, fail2ban.ErrJailNotFound
	}
	return jail, nil
}

func (m *MockStatusClient) Version(ctx context.Context) (*fail2ban.VersionInfo, error) {
	m.Invocations++
	if m.err != nil {
		return nil, m.err
	}
	return m.version, nil
}
