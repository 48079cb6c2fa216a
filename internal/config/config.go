// Package config defines the pidext configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"os"
	"path/filepath"
)

// Output formats accepted by the OUTPUT key and the --output flag.
const (
	OutputTable = "table"
	OutputPlain = "plain"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = ".pidext"

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [3]string{
	"VERBOSE",
	"NO_COLOR",
	"OUTPUT",
}

// Config holds every configuration field for the pidext CLI.
type Config struct {
	// Runtime flags.
	Verbose bool
	NoColor bool

	// Output format: OutputTable or OutputPlain.
	Output string

	// CLI-only flags (not loaded from config files).
	ConfigFile string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Output: OutputTable,
	}
}

// GlobalPath returns the per-user config file location, or "" when the user
// config directory cannot be determined.
func GlobalPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pidext", "config")
}
