// Package cli provides the command tree, flag binding and validation for the
// pidext CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/pidext/internal/config"
)

// BindFlags registers the global flags as persistent flags on cmd so every
// subcommand accepts them. The flags directly modify fields in cfg.
// Call ValidateFlags after parsing to check values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.PersistentFlags()

	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log unresolved codes and config sources")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flags.StringVarP(&cfg.Output, "output", "o", config.OutputTable, "Output format: table or plain")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
}

// ValidateFlags checks flag values after parsing.
func ValidateFlags(cfg *config.Config) error {
	if cfg.Output != config.OutputTable && cfg.Output != config.OutputPlain {
		return fmt.Errorf("--output must be 'table' or 'plain', got: %s", cfg.Output)
	}

	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	return nil
}

// BuildOverrides creates a map of CLI flag overrides from cfg. Only flags
// explicitly set by the user are included, so config file values are not
// overridden by flag defaults.
func BuildOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)
	flags := cmd.Flags()

	if flags.Changed("output") {
		overrides["OUTPUT"] = cfg.Output
	}

	boolFlags := map[string]struct {
		key string
		val bool
	}{
		"verbose":  {"VERBOSE", cfg.Verbose},
		"no-color": {"NO_COLOR", cfg.NoColor},
	}
	for flag, mapping := range boolFlags {
		if flags.Changed(flag) {
			if mapping.val {
				overrides[mapping.key] = "true"
			} else {
				overrides[mapping.key] = "false"
			}
		}
	}

	return overrides
}
