package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/tsubst/pkg/core"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "39"})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"})
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"})
)

// stderrIsTTY gates styling so piped output stays plain
func stderrIsTTY() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func render(style lipgloss.Style, text string) string {
	if !stderrIsTTY() {
		return text
	}
	return style.Render(text)
}

// renderReport summarizes what a run did (or would do, under dry run).
// Plain stdout substitution produces no report so piped output stays
// clean; only file writes and dry runs are worth narrating.
func renderReport(w io.Writer, result *core.RunResult) {
	wroteFiles := false
	for _, unit := range result.Units {
		if unit.Destination != "stdout" {
			wroteFiles = true
			break
		}
	}
	if !result.DryRun && !wroteFiles {
		return
	}

	if result.DryRun {
		fmt.Fprintln(w, render(titleStyle, MsgDryRunNotice))
		if len(result.Units) == 0 {
			fmt.Fprintln(w, render(mutedStyle, MsgNothingToDo))
			return
		}
	}

	for _, unit := range result.Units {
		verb := "wrote"
		if !unit.Written {
			verb = "would write"
		}
		fmt.Fprintf(w, "  %s %s %s\n",
			verb,
			render(pathStyle, unit.Destination),
			render(mutedStyle, fmt.Sprintf("(%d bytes, from %s)", unit.Bytes, unit.Source)))
	}
}

// RenderError formats a fatal error for the terminal
func RenderError(err error) string {
	return render(errorStyle, fmt.Sprintf("tsubst: %v", err))
}
