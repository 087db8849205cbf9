package history

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	version  lipgloss.Style
	detail   lipgloss.Style
	meta     lipgloss.Style
	running  lipgloss.Style
	exited   lipgloss.Style
	stopped  lipgloss.Style
	failed   lipgloss.Style
	errorMsg lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		version:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		running:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		exited:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		stopped:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		failed:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		errorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
