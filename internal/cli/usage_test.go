package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCustomHelp(t *testing.T) {
	cmd := &cobra.Command{Use: "pidext", Run: func(*cobra.Command, []string) {}}
	SetCustomHelp(cmd)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "pidext - extended particle identifiers")
	assert.Contains(t, out, "resolve <pdg-code>")
	assert.Contains(t, out, "UnknownCode")
	assert.Contains(t, out, "UnknownIdentifier")
}
