package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes themed output. Messages go to Err, views to Out.
type Printer struct {
	Out, Err io.Writer
	Theme    Theme
}

// NewPrinter picks a color profile for out. With color off, or the mono
// theme, output is plain text even on a terminal.
func NewPrinter(out, errw io.Writer, theme string, color bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if !color || strings.EqualFold(theme, "mono") {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{Out: out, Err: errw, Theme: NewTheme(r, theme)}
}

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.Theme.Success.Render(p.Theme.SymOK+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Error.Render(p.Theme.SymFail+" "+msg))
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Pending.Render(p.Theme.SymWarn+" "+msg))
}

func (p *Printer) Hint(msg string) {
	fmt.Fprintln(p.Err, p.Theme.Muted.Render(msg))
}
