package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `pidext - extended particle identifiers for MC analysis

USAGE
  pidext <command> [flags] [args]

COMMANDS
  names                  List every identifier with its name, PDG code and antiparticle
  name <id|name>...      Show the name of an identifier, or the identifier of a name
  resolve <pdg-code>...  Resolve PDG Monte Carlo codes to identifiers

FLAGS
  -v, --verbose          Log unresolved codes and config sources
  --no-color             Disable colored output (also NO_COLOR=1)
  -o, --output <format>  Output format: table or plain (default: table)
  --config <path>        Path to additional config file
  -h, --help             Show this help text
  --version              Show version, commit, build date

CONFIG FILES
  $XDG_CONFIG_HOME/pidext/config, ./.pidext and --config, in increasing
  priority, holding KEY=VALUE lines: VERBOSE, NO_COLOR, OUTPUT.

EXIT CODES
  0   Success              Every argument resolved
  1   Error                Invalid arguments or configuration
  2   UnknownCode          At least one PDG code has no identifier
  3   UnknownIdentifier    At least one identifier or name is unknown

EXAMPLES
  # Resolve a proton, an antiproton and an unknown code
  pidext resolve 2212 -- -2212 999999

  # Tab-separated name table for scripts
  pidext names -o plain
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
