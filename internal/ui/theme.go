package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
	SymOK, SymFail, SymWarn  string
	Border                   lipgloss.Border
	BorderColor              lipgloss.TerminalColor

	renderer *lipgloss.Renderer
}

var monoBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// NewTheme builds the named theme on r. Unknown names fall back to classic.
func NewTheme(r *lipgloss.Renderer, name string) Theme {
	t := newTheme(r, name)
	t.renderer = r
	return t
}

func newTheme(r *lipgloss.Renderer, name string) Theme {
	s := r.NewStyle
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:   s().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:   s().Faint(true),
			Accent:  s().Foreground(lipgloss.Color("14")),
			Success: s().Foreground(lipgloss.Color("10")),
			Error:   s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: s().Foreground(lipgloss.Color("11")),

			Done:     s().Faint(true).Strikethrough(true),
			Selected: s().Bold(true).Reverse(true),
			Help:     s().Faint(true),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymPending: "•",
			SymOK: "✔", SymFail: "✖", SymWarn: "!",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		plain := s()
		return Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,

			Done:     plain,
			Selected: plain.Reverse(true),
			Help:     plain,

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymPending: "-",
			SymOK: "ok", SymFail: "error:", SymWarn: "warning:",
			Border:      monoBorder,
			BorderColor: lipgloss.NoColor{},
		}
	default: // classic
		return Theme{
			Title:   s().Bold(true),
			Muted:   s().Faint(true),
			Accent:  s().Foreground(lipgloss.Color("12")),
			Success: s().Foreground(lipgloss.Color("42")),
			Error:   s().Foreground(lipgloss.Color("9")).Bold(true),
			Pending: s().Foreground(lipgloss.Color("214")),

			Done:     s().Faint(true).Strikethrough(true),
			Selected: s().Bold(true).Reverse(true),
			Help:     s().Faint(true),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymDone: "✔", SymPending: "•",
			SymOK: "✔", SymFail: "✖", SymWarn: "!",
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}
