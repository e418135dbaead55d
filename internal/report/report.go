// Package report renders per-file issue blocks for the CLI.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette, matching common lint tooling conventions.
const (
	colorRed    = "196"
	colorYellow = "220"
	colorGray   = "245"
)

// Styles holds the render styles for a report.
type Styles struct {
	Path    lipgloss.Style
	Issue   lipgloss.Style
	Summary lipgloss.Style
}

// DefaultStyles returns colored styles for terminal output.
func DefaultStyles() Styles {
	return Styles{
		Path:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorRed)),
		Issue:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow)),
		Summary: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
	}
}

// PlainStyles returns unstyled output for pipes and files.
func PlainStyles() Styles {
	return Styles{
		Path:    lipgloss.NewStyle(),
		Issue:   lipgloss.NewStyle(),
		Summary: lipgloss.NewStyle(),
	}
}

// Printer writes issue reports.
type Printer struct {
	out    io.Writer
	styles Styles
}

// New creates a Printer for out. Color is enabled only when out is a
// terminal.
func New(out io.Writer) *Printer {
	styles := PlainStyles()
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		styles = DefaultStyles()
	}
	return &Printer{out: out, styles: styles}
}

// NewWithStyles creates a Printer with explicit styles.
func NewWithStyles(out io.Writer, styles Styles) *Printer {
	return &Printer{out: out, styles: styles}
}

// File prints the issue block for one failing catalog: the path on its
// own line, then each issue indented. Multi-line issues stay indented.
func (p *Printer) File(path string, issues []string) {
	fmt.Fprintf(p.out, "%s:\n", p.styles.Path.Render(path))
	for _, issue := range issues {
		indented := strings.ReplaceAll(issue, "\n", "\n\t")
		fmt.Fprintf(p.out, "\t%s\n", p.styles.Issue.Render(indented))
	}
}

// Summary prints the final tally for a check run.
func (p *Printer) Summary(checked, failing int) {
	if failing == 0 {
		fmt.Fprintln(p.out, p.styles.Summary.Render(
			fmt.Sprintf("%d file(s) checked, all clean", checked)))
		return
	}
	fmt.Fprintln(p.out, p.styles.Summary.Render(
		fmt.Sprintf("%d of %d file(s) have issues", failing, checked)))
}
