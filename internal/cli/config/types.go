// Package config loads plantaudit configuration from file, environment
// variables, and CLI flags.
package config

// Defaults for configuration values.
const (
	DefaultDataDir = "."
	DefaultOutput  = "auto"
)

// Config holds the resolved configuration for a CLI invocation.
type Config struct {
	DataDir      string       `koanf:"data_dir"`
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	Audit        *AuditConfig `koanf:"audit"`
}

// AuditConfig holds rule catalog settings from the config file.
type AuditConfig struct {
	// Disabled lists rule IDs to skip
	Disabled []string `koanf:"disabled"`

	// Severity maps rule IDs to severity overrides ("critical", "warning")
	Severity map[string]string `koanf:"severity"`
}
