package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wesleyorama2/plangen/internal/model"
)

// DiagnosticPrinter renders a validation diagnostic tree, one
// indentation level per nesting step, severity-colored when the
// destination is a terminal.
type DiagnosticPrinter struct {
	NoColor bool

	w io.Writer
}

// NewDiagnosticPrinter creates a printer writing to w. Colors are
// disabled when noColor is set or w is not a terminal.
func NewDiagnosticPrinter(w io.Writer, noColor bool) *DiagnosticPrinter {
	if f, ok := w.(*os.File); ok && !isTerminal(f) {
		noColor = true
	}
	return &DiagnosticPrinter{NoColor: noColor, w: w}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Print writes the whole diagnostic tree.
func (p *DiagnosticPrinter) Print(d *model.Diagnostic) {
	p.print(d, 0)
}

func (p *DiagnosticPrinter) print(d *model.Diagnostic, depth int) {
	indent := strings.Repeat("  ", depth)
	label := p.severityLabel(d.Severity)
	fmt.Fprintf(p.w, "%s%s %s\n", indent, label, d.Message)
	for _, c := range d.Children {
		p.print(c, depth+1)
	}
}

func (p *DiagnosticPrinter) severityLabel(sev model.Severity) string {
	c := severityColor(sev)
	if p.NoColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprintf("[%s]", sev)
}

func severityColor(sev model.Severity) *color.Color {
	switch sev {
	case model.SeverityOK:
		return color.New(color.FgGreen)
	case model.SeverityWarning:
		return color.New(color.FgYellow, color.Bold)
	case model.SeverityError:
		return color.New(color.FgRed, color.Bold)
	}
	return color.New(color.FgWhite)
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}
