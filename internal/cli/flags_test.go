package cli

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/pidext/internal/config"
)

func TestBindFlags_DefaultValues(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)

	err := cmd.ParseFlags([]string{})
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, config.OutputTable, cfg.Output)
	assert.Empty(t, cfg.ConfigFile)
}

func TestBindFlags_ShortAndLongForms(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verb   bool
		output string
	}{
		{"none", []string{}, false, "table"},
		{"long", []string{"--verbose", "--output", "plain"}, true, "plain"},
		{"short", []string{"-v", "-o", "plain"}, true, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cmd := &cobra.Command{Use: "test"}
			BindFlags(cmd, cfg)

			require.NoError(t, cmd.ParseFlags(tt.args))
			assert.Equal(t, tt.verb, cfg.Verbose)
			assert.Equal(t, tt.output, cfg.Output)
		})
	}
}

func TestValidateFlags_InvalidOutput(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Output = "json"

	err := ValidateFlags(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be 'table' or 'plain'")
}

func TestValidateFlags_MissingConfigFile(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.ConfigFile = filepath.Join(t.TempDir(), "missing")

	err := ValidateFlags(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--config")
}

func TestBuildOverrides_OnlyChangedFlags(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--no-color"}))
	overrides := BuildOverrides(cmd, cfg)

	assert.Equal(t, map[string]string{"NO_COLOR": "true"}, overrides)
}

func TestBuildOverrides_ExplicitFalse(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)

	require.NoError(t, cmd.ParseFlags([]string{"--verbose=false", "-o", "plain"}))
	overrides := BuildOverrides(cmd, cfg)

	assert.Equal(t, "false", overrides["VERBOSE"])
	assert.Equal(t, "plain", overrides["OUTPUT"])
}
