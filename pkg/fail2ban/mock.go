package fail2ban

import (
	"context"
	"strings"
	"time"
)

// MockCall records a single invocation seen by the mock runner.
type MockCall struct {
	Name string
	Args []string
}

// MockRunner is an in-memory Runner for tests. Canned outputs and errors
// are keyed by the full command line ("name arg1 arg2 ...").
type MockRunner struct {
	Calls   []MockCall
	Stdouts map[string]string
	Stderrs map[string]string
	Errors  map[string]error

	// Delay makes every call block until the delay elapses or the context
	// is done, to simulate a slow or hung fail2ban-client.
	Delay time.Duration
}

func NewMockRunner() *MockRunner {
	return &MockRunner{
		Stdouts: make(map[string]string),
		Stderrs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

func (m *MockRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	m.Calls = append(m.Calls, MockCall{Name: name, Args: args})

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", "", ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	key := strings.Join(append([]string{name}, args...), " ")
	if err, ok := m.Errors[key]; ok {
		return "", m.Stderrs[key], err
	}
	return m.Stdouts[key], m.Stderrs[key], nil
}
