package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Jozeph555/coincalc/internal/ui"
)

// styles bundles the lipgloss styles used by the dashboard, derived from
// the active ui theme at construction time.
type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	panel   lipgloss.Style
	solver  lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	help    lipgloss.Style
}

func newStyles() styles {
	theme := ui.GetCurrentTUITheme()
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),
		header: lipgloss.NewStyle().
			Foreground(theme.Dim),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		solver: lipgloss.NewStyle().
			Foreground(theme.Accent),
		value: lipgloss.NewStyle().
			Foreground(theme.Text),
		success: lipgloss.NewStyle().
			Foreground(theme.Success),
		failure: lipgloss.NewStyle().
			Foreground(theme.Error),
		help: lipgloss.NewStyle().
			Foreground(theme.Dim),
	}
}
