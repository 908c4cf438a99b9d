// Package config loads the service configuration from an optional YAML
// file layered over built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orenlab/fail2ban-api/pkg/api"
	"github.com/orenlab/fail2ban-api/pkg/fail2ban"
)

// Config aggregates the configuration of all components.
//
// Example file:
//
//	api:
//	  host: 0.0.0.0
//	  port: 8000
//	fail2ban:
//	  client_path: /usr/bin/fail2ban-client
//	  not_found_markers:
//	    - sorry but the jail
//	    - does not exist
type Config struct {
	API      *api.Config      `json:"api" yaml:"api"`
	Fail2ban *fail2ban.Config `json:"fail2ban" yaml:"fail2ban"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		API:      api.DefaultConfig(),
		Fail2ban: fail2ban.DefaultConfig(),
	}
}

// Load reads a YAML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
