package main

import (
	"fmt"
	"os"

	"github.com/CodexForgeBR/pidext/internal/cli"
	"github.com/CodexForgeBR/pidext/internal/logging"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCommand(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))

	if err := rootCmd.Execute(); err != nil {
		logging.Error(err.Error())
		os.Exit(cli.ExitCodeFor(err))
	}
}
