// Package report renders run results for a terminal: connector stats,
// validation findings, the connector listing and the write summary.
// Colour is applied only when the destination supports it.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rafa3127/MCP-shared-Config/internal/connector"
)

// Printer writes styled report lines to w.
type Printer struct {
	w       io.Writer
	info    lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	errorS  lipgloss.Style
	debug   lipgloss.Style
	bold    lipgloss.Style
}

// New returns a Printer for w. The colour profile is detected from w, so
// buffers and pipes get plain text.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		errorS:  r.NewStyle().Foreground(lipgloss.Color("9")),
		debug:   r.NewStyle().Foreground(lipgloss.Color("8")),
		bold:    r.NewStyle().Bold(true),
	}
}

func (p *Printer) line(style lipgloss.Style, tag, msg string) {
	fmt.Fprintln(p.w, style.Render(tag+" "+msg))
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.info, "[INFO]", fmt.Sprintf(format, args...))
}

// Success prints a success line.
func (p *Printer) Success(format string, args ...any) {
	p.line(p.success, "[OK]", fmt.Sprintf(format, args...))
}

// Warning prints a warning line.
func (p *Printer) Warning(format string, args ...any) {
	p.line(p.warning, "[WARN]", fmt.Sprintf(format, args...))
}

// Error prints an error line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.errorS, "[ERROR]", fmt.Sprintf(format, args...))
}

// Detail prints an indented plain line under the previous one.
func (p *Printer) Detail(format string, args ...any) {
	fmt.Fprintf(p.w, "   "+format+"\n", args...)
}

// Raw prints text as is.
func (p *Printer) Raw(text string) {
	fmt.Fprint(p.w, text)
}

// Stats prints the enabled/disabled summary.
func (p *Printer) Stats(s connector.Stats) {
	p.Info("Connectors available: %d | enabled: %d | disabled: %d", s.Total, s.Enabled, s.Disabled)
	if s.Enabled > 0 {
		p.Detail("enabled: %s", strings.Join(s.EnabledNames, ", "))
	}
	if s.Disabled > 0 {
		p.Detail("disabled: %s", strings.Join(s.DisabledNames, ", "))
	}
}

// Validation prints warnings then errors and reports whether the result
// is free of errors.
func (p *Printer) Validation(agg *connector.AggregateResult) bool {
	if len(agg.Warnings) > 0 {
		p.Warning("Warnings:")
		for _, w := range agg.Warnings {
			p.Detail("%s %s", p.warning.Render("!"), w)
		}
	}

	if len(agg.Errors) > 0 {
		p.Error("Errors:")
		for _, e := range agg.Errors {
			p.Detail("%s %s", p.errorS.Render("x"), e)
		}
		return false
	}

	if len(agg.Warnings) == 0 {
		p.Success("Configuration is valid")
	}
	return true
}

// ListEntry is one connector in the listing.
type ListEntry struct {
	connector.Info
	RequiredEnvVars []string `json:"requiredEnvVars"`
	OptionalEnvVars []string `json:"optionalEnvVars"`
}

// Connectors prints every connector with its state. Requirements and
// priority details are shown for enabled connectors only.
func (p *Printer) Connectors(entries []ListEntry, s connector.Stats) {
	p.Info("Available connectors:")
	for _, e := range entries {
		state := p.debug.Render("disabled")
		if e.Enabled {
			state = p.success.Render("enabled")
		}

		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, p.bold.Render(e.DisplayName))
		p.Detail("state: %s", state)
		p.Detail("variable: %s", e.EnabledVar)

		if !e.Enabled {
			continue
		}
		if len(e.RequiredEnvVars) > 0 {
			p.Detail("required: %s", strings.Join(e.RequiredEnvVars, ", "))
		}
		if e.Instructions != "" {
			p.Detail("instructions: configured for high priority")
		}
		if e.Priority > connector.DefaultPriority {
			p.Detail("priority: %d (high)", e.Priority)
		}
	}
	fmt.Fprintln(p.w)
	p.Info("Summary: %d/%d connectors enabled", s.Enabled, s.Total)
}

// Summary prints what was written.
func (p *Printer) Summary(path string, names []string) {
	p.Info("Summary:")
	p.Detail("file: %s", path)
	p.Detail("connectors configured: %d", len(names))
	for _, n := range names {
		p.Detail("  - %s", n)
	}
}
