package fail2ban

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Config holds settings for the fail2ban-client wrapper.
type Config struct {
	// ClientPath is the fail2ban-client executable to invoke.
	ClientPath string `json:"client_path" yaml:"client_path"`

	// Timeout bounds each fail2ban-client invocation.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// NotFoundMarkers are stderr substrings (matched case-insensitively)
	// that identify an unknown-jail failure. The wording differs between
	// fail2ban releases, so the list is configurable.
	NotFoundMarkers []string `json:"not_found_markers" yaml:"not_found_markers"`
}

// DefaultConfig returns default client configuration.
func DefaultConfig() *Config {
	return &Config{
		ClientPath: "fail2ban-client",
		Timeout:    5 * time.Second,
		NotFoundMarkers: []string{
			"sorry but the jail",
			"does not exist",
		},
	}
}

// StatusClient defines the read-only queries against the fail2ban service.
// This interface is useful for testing and dependency injection.
type StatusClient interface {
	Status(ctx context.Context) (*ServiceStatus, error)
	JailStatus(ctx context.Context, jailName string) (*JailStatus, error)
	Version(ctx context.Context) (*VersionInfo, error)
}

// Ensure Client implements StatusClient interface
var _ StatusClient = (*Client)(nil)

var jailNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateJailName reports whether a jail name contains only safe
// characters (alphanumeric, dash, underscore). Names that fail this check
// must never reach the subprocess.
func ValidateJailName(name string) bool {
	return jailNamePattern.MatchString(name)
}

// Client queries the fail2ban service through the fail2ban-client binary.
// It spawns one process per call and keeps no state between calls, so it
// is safe for concurrent use.
type Client struct {
	config *Config
	runner Runner
}

// NewClient creates a client that executes fail2ban-client on the local
// system.
func NewClient(cfg *Config) *Client {
	return NewClientWithRunner(cfg, NewExecRunner())
}

// NewClientWithRunner creates a client with a custom runner, which lets
// tests substitute canned subprocess behavior.
func NewClientWithRunner(cfg *Config, runner Runner) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Client{
		config: cfg,
		runner: runner,
	}
}

// Status retrieves the overall fail2ban service status.
func (c *Client) Status(ctx context.Context) (*ServiceStatus, error) {
	out, err := c.run(ctx, "status")
	if err != nil {
		return nil, err
	}
	return ParseStatus(out)
}

// JailStatus retrieves the status of a single jail. The name is validated
// before any subprocess is spawned.
func (c *Client) JailStatus(ctx context.Context, jailName string) (*JailStatus, error) {
	if !ValidateJailName(jailName) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidJailName, jailName)
	}

	out, err := c.run(ctx, "status", jailName)
	if err != nil {
		return nil, err
	}
	return ParseJailStatus(out, jailName)
}

// Version retrieves the fail2ban service version.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	out, err := c.run(ctx, "version")
	if err != nil {
		return nil, err
	}
	return ParseVersion(out)
}

// run executes fail2ban-client with the given arguments under the
// configured timeout and classifies failures.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	stdout, stderr, err := c.runner.Run(ctx, c.config.ClientPath, args...)
	if err == nil {
		return stdout, nil
	}

	command := c.config.ClientPath + " " + strings.Join(args, " ")

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Errorf("Command %q timed out after %s", command, c.config.Timeout)
		return "", fmt.Errorf("%w: command timed out after %s", ErrUnavailable, c.config.Timeout)
	}

	if c.isNotFound(stderr) {
		return "", fmt.Errorf("%w: %s", ErrJailNotFound, strings.TrimSpace(stderr))
	}

	log.Errorf("Command %q failed: %v: %s", command, err, strings.TrimSpace(stderr))
	return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// isNotFound reports whether stderr matches a configured unknown-jail
// marker.
func (c *Client) isNotFound(stderr string) bool {
	text := strings.ToLower(stderr)
	for _, marker := range c.config.NotFoundMarkers {
		if marker == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}
