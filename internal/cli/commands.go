package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/pidext/internal/banner"
	"github.com/CodexForgeBR/pidext/internal/config"
	"github.com/CodexForgeBR/pidext/internal/exitcode"
	"github.com/CodexForgeBR/pidext/internal/logging"
	"github.com/CodexForgeBR/pidext/internal/species"
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeFor maps a command error to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return exitcode.Success
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return exitcode.Error
}

// NewRootCommand builds the pidext command tree. Flag values and config files
// are merged into cfg before any subcommand runs.
func NewRootCommand(version string) *cobra.Command {
	cfg := config.NewDefaultConfig()

	root := &cobra.Command{
		Use:     "pidext",
		Short:   "Extended particle identifiers for MC analysis",
		Long:    "pidext lists the extended particle identifiers and resolves PDG Monte Carlo codes to them.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := ValidateFlags(cfg); err != nil {
				return err
			}
			return loadConfig(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	BindFlags(root, cfg)
	SetCustomHelp(root)

	root.AddCommand(
		newNamesCommand(cfg),
		newNameCommand(cfg),
		newResolveCommand(cfg),
	)
	return root
}

// loadConfig layers config files under the explicitly set flags and applies
// the result to the logger.
func loadConfig(cmd *cobra.Command, cfg *config.Config) error {
	overrides := BuildOverrides(cmd, cfg)

	final, err := config.LoadWithPrecedence(config.GlobalPath(), config.ProjectFile, cfg.ConfigFile, overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	final.ConfigFile = cfg.ConfigFile
	if err := ValidateFlags(final); err != nil {
		return err
	}
	*cfg = *final

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		logging.SetColor(false)
	}
	logging.SetVerbose(cfg.Verbose)
	return nil
}

func newNamesCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List every identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			banner.PrintNames(cmd.OutOrStdout(), cfg.Output)
			return nil
		},
	}
}

func newNameCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "name <id|name>...",
		Short: "Show the name of an identifier, or the identifier of a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]banner.Resolution, 0, len(args))
			var failed []error

			for _, arg := range args {
				id, err := parseIdentifier(arg)
				if err != nil {
					logging.Debug(err.Error())
					failed = append(failed, err)
					results = append(results, banner.Resolution{Input: arg, ID: species.NotFound})
					continue
				}
				results = append(results, banner.Resolution{Input: arg, ID: id, Found: true})
			}

			banner.PrintResolutions(cmd.OutOrStdout(), cfg.Output, results)
			if len(failed) > 0 {
				return &ExitError{Code: exitcode.UnknownIdentifier, Err: errors.Join(failed...)}
			}
			return nil
		},
	}
}

// parseIdentifier accepts either a numeric identifier or a display name.
func parseIdentifier(arg string) (species.ID, error) {
	n, err := strconv.ParseInt(arg, 10, 16)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return species.NotFound, fmt.Errorf("%w: %s", species.ErrIDOutOfRange, arg)
		}
		return species.ParseName(arg)
	}
	id := species.ID(n)
	if _, err := species.Name(id); err != nil {
		return species.NotFound, err
	}
	return id, nil
}

func newResolveCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <pdg-code>...",
		Short: "Resolve PDG Monte Carlo codes to identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := make([]int, len(args))
			for i, arg := range args {
				code, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid PDG code %q: %w", arg, err)
				}
				codes[i] = code
			}

			results := make([]banner.Resolution, len(codes))
			var failed []error
			for i, code := range codes {
				id, err := species.Lookup(code)
				if err != nil {
					failed = append(failed, err)
				}
				results[i] = banner.Resolution{Input: args[i], ID: id, Found: err == nil}
			}

			banner.PrintResolutions(cmd.OutOrStdout(), cfg.Output, results)
			if len(failed) > 0 {
				return &ExitError{Code: exitcode.UnknownCode, Err: errors.Join(failed...)}
			}
			return nil
		},
	}
}
