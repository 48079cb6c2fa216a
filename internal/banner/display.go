// Package banner renders identifier tables and resolution results for the
// pidext CLI.
//
// Table output starts with a colored header and separator lines; plain output
// is tab-separated with no decoration so it can be piped into other tools.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/pidext/internal/config"
	"github.com/CodexForgeBR/pidext/internal/species"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	baseColor   = color.New(color.FgGreen).SprintFunc()
	errorColor  = color.New(color.FgRed, color.Bold).SprintFunc()
)

const sepWidth = 51

// Resolution is the outcome of resolving one command-line argument.
type Resolution struct {
	Input string
	ID    species.ID
	Found bool
}

// PrintNames writes every identifier with its name, PDG code and
// antiparticle.
//
// Example table output:
//
//	═══════════════════════════════════════════════════
//	  ID   Name              PDG         Anti
//	═══════════════════════════════════════════════════
//	  0  * Electron          11          Positron
//	  ...
//	═══════════════════════════════════════════════════
//	  * shared with the track PID catalog (17 of 56)
func PrintNames(w io.Writer, format string) {
	if format == config.OutputPlain {
		for i, name := range species.Names() {
			id := species.ID(i)
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, name, codeString(id), antiString(id))
		}
		return
	}

	sep := headerColor(strings.Repeat("═", sepWidth))
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor(fmt.Sprintf("  %-4s %-17s %-11s %s", "ID", "Name", "PDG", "Anti")))
	fmt.Fprintln(w, sep)
	for i, name := range species.Names() {
		id := species.ID(i)
		mark := " "
		if species.IsBase(id) {
			mark = baseColor("*")
		}
		fmt.Fprintf(w, "  %-2d %s %-17s %-11s %s\n", i, mark, name, codeString(id), antiString(id))
	}
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  * shared with the track PID catalog (%d of %d)\n", species.PIDCounts, species.NIDsTot)
}

// PrintResolutions writes one line per resolved argument. Unresolved
// arguments are reported as "-".
func PrintResolutions(w io.Writer, format string, results []Resolution) {
	if format == config.OutputPlain {
		for _, r := range results {
			if !r.Found {
				fmt.Fprintf(w, "%s\t-\t-\n", r.Input)
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", r.Input, r.ID, r.ID)
		}
		return
	}

	sep := headerColor(strings.Repeat("─", sepWidth))
	fmt.Fprintln(w, sep)
	for _, r := range results {
		if !r.Found {
			fmt.Fprintf(w, "  %-12s %s\n", r.Input, errorColor("not found"))
			continue
		}
		fmt.Fprintf(w, "  %-12s %-3d %s\n", r.Input, r.ID, r.ID)
	}
	fmt.Fprintln(w, sep)
}

func codeString(id species.ID) string {
	code, ok := species.Code(id)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%d", code)
}

func antiString(id species.ID) string {
	anti, ok := species.Antiparticle(id)
	if !ok {
		return "-"
	}
	return anti.String()
}
