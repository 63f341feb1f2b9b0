package tui

import "github.com/charmbracelet/lipgloss"

type styleSet struct {
	header       lipgloss.Style
	section      lipgloss.Style
	label        lipgloss.Style
	labelFocused lipgloss.Style
	required     lipgloss.Style
	hint         lipgloss.Style
	errorTitle   lipgloss.Style
	errorLine    lipgloss.Style
	box          lipgloss.Style
	fileLine     lipgloss.Style
	success      lipgloss.Style
	phaseTitle   lipgloss.Style
	phaseDesc    lipgloss.Style
	toggleOn     lipgloss.Style
	toggleOff    lipgloss.Style
}

func newStyleSet() styleSet {
	return styleSet{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CCCCCC")).
			MarginTop(1),
		label:        lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		labelFocused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		required:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1),
		errorTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		errorLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1),
		fileLine:   lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		success:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECB71")),
		phaseTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		phaseDesc:  lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		toggleOn:   lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECB71")),
		toggleOff:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
	}
}
