// Package config provides configuration management for the inspector-mcp server.
//
// Configuration controls:
//   - Capability mode (readonly vs full): determines which tools are available
//   - The command used to launch the MCP Inspector CLI
//   - Timeout defaults and the hard ceiling applied to client-supplied timeouts
//   - Concurrency limit for batch inspections
//   - The directory where saved inspection profiles live
//
// Configuration can be loaded from a JSON or YAML file or use sensible
// defaults. The readonly mode exposes only discovery and read tools, while
// full mode also allows invoking tools on target servers and writing
// inspection profiles.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// CapabilityMode defines the level of capabilities exposed
type CapabilityMode string

const (
	ModeReadOnly CapabilityMode = "readonly" // Discovery and read tools only
	ModeFull     CapabilityMode = "full"     // All tools enabled
)

// Config holds the server configuration
type Config struct {
	Mode CapabilityMode `json:"mode" yaml:"mode"`

	// InspectorCommand is the executable used to run the Inspector CLI,
	// and InspectorArgs the leading arguments before the target server
	// command. The defaults shell out to npx.
	InspectorCommand string   `json:"inspectorCommand" yaml:"inspectorCommand"`
	InspectorArgs    []string `json:"inspectorArgs" yaml:"inspectorArgs"`

	// Timeouts. DefaultTimeout applies when the client omits one,
	// ComprehensiveTimeout to comprehensive_server_test probes, and
	// MaxTimeout bounds whatever the client asks for.
	DefaultTimeout       Duration `json:"defaultTimeout" yaml:"defaultTimeout"`
	ComprehensiveTimeout Duration `json:"comprehensiveTimeout" yaml:"comprehensiveTimeout"`
	MaxTimeout           Duration `json:"maxTimeout" yaml:"maxTimeout"`

	// MaxConcurrentInspections bounds batch_inspect_servers fan-out.
	MaxConcurrentInspections int `json:"maxConcurrentInspections" yaml:"maxConcurrentInspections"`

	// ConfigDir is where saved inspection profiles are stored. Empty means
	// a per-user data directory is chosen at startup.
	ConfigDir string `json:"configDir" yaml:"configDir"`
}

// Duration wraps time.Duration so config files can say "30s" or "5m".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("duration must be a string like \"30s\" or an integer")
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON renders the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML accepts a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mode:                     ModeFull,
		InspectorCommand:         "npx",
		InspectorArgs:            []string{"@modelcontextprotocol/inspector", "--cli"},
		DefaultTimeout:           Duration(30 * time.Second),
		ComprehensiveTimeout:     Duration(60 * time.Second),
		MaxTimeout:               Duration(5 * time.Minute),
		MaxConcurrentInspections: 4,
	}
}

// LoadConfig loads configuration from a JSON or YAML file. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mode != ModeReadOnly && c.Mode != ModeFull {
		return fmt.Errorf("invalid mode %q: must be 'readonly' or 'full'", c.Mode)
	}
	if c.InspectorCommand == "" {
		return fmt.Errorf("inspectorCommand must not be empty")
	}
	if c.MaxConcurrentInspections < 1 {
		return fmt.Errorf("maxConcurrentInspections must be at least 1")
	}
	if c.MaxTimeout.Std() <= 0 {
		return fmt.Errorf("maxTimeout must be positive")
	}
	return nil
}

// ClampTimeout bounds a client-supplied timeout to (0, MaxTimeout]. Zero or
// negative values fall back to the default timeout.
func (c *Config) ClampTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		d = c.DefaultTimeout.Std()
	}
	if max := c.MaxTimeout.Std(); d > max {
		return max
	}
	return d
}

// CanCallTools returns true if invoking tools on target servers is allowed
func (c *Config) CanCallTools() bool {
	return c.Mode == ModeFull
}

// CanWriteConfigs returns true if saving inspection profiles is allowed
func (c *Config) CanWriteConfigs() bool {
	return c.Mode == ModeFull
}

// CanSetLogLevel returns true if runtime log level changes are allowed
func (c *Config) CanSetLogLevel() bool {
	return c.Mode == ModeFull
}
