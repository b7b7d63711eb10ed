package menu

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/qtwr/typewright/highlight"
)

// Style controls the menu's rendering.
type Style struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style
	Action   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style

	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style

	Code highlight.Style
}

func DefaultStyle() Style {
	return Style{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Focused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Action:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),

		PopupBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1),
		PopupTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),

		Code: highlight.DefaultStyle(),
	}
}
