// Package theme centralizes Lip Gloss styles for the habit UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used by the habit list view.
type Theme struct {
	Title     lipgloss.Style
	Row       RowTheme
	Footer    FooterTheme
	Empty     lipgloss.Style
	Frame     lipgloss.Style
	BarEmpty  lipgloss.Style
	BarLow    colorful.Color
	BarHigh   colorful.Color
	BarFilled string
	BarBlank  string
}

// RowTheme styles a single habit row.
type RowTheme struct {
	Cursor    lipgloss.Style
	Completed lipgloss.Style
	Pending   lipgloss.Style
	Name      lipgloss.Style
	Done      lipgloss.Style
	Streak    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	low, _ := colorful.Hex("#F25D94")
	high, _ := colorful.Hex("#04B575")

	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Row: RowTheme{
			Cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Name:      lipgloss.NewStyle(),
			Done:      lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Streak:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Empty: lipgloss.NewStyle().Faint(true).Italic(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		BarEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		BarLow:    low,
		BarHigh:   high,
		BarFilled: "█",
		BarBlank:  "░",
	}
}

// ProgressColor blends from BarLow to BarHigh as percent goes 0..100.
func (t Theme) ProgressColor(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return t.BarLow.BlendLuv(t.BarHigh, float64(percent)/100).Clamped().Hex()
}
