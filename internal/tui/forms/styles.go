package forms

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadbook/internal/tui/theme"
)

func titleStyle(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if focused && theme.Highlight != "" {
		return s.Foreground(lipgloss.Color(theme.Highlight))
	}
	if theme.Subtle != "" {
		return s.Foreground(lipgloss.Color(theme.Subtle))
	}
	return s
}

func optionStyle(selected bool) lipgloss.Style {
	if !selected {
		s := lipgloss.NewStyle().Padding(0, 1)
		if theme.Subtle != "" {
			s = s.Foreground(lipgloss.Color(theme.Subtle))
		}
		return s
	}
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if theme.SelectedBg != "" {
		s = s.Foreground(lipgloss.Color(theme.SelectedFg)).Background(lipgloss.Color(theme.SelectedBg))
	}
	return s
}
