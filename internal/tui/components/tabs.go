package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// RenderTabs renders the tab bar with the notification, if any, at the right.
// When the names do not fit in width, inactive tabs shrink to their first letters.
//
// Layout:
//
//	╭────────────╮╭─────────────╮               [Notification]
//	│ Leads Input││ Leads Table │───────────────
func RenderTabs(tabs []string, selectedIdx int, width int, notificationContent string) string {
	row := renderTabRow(tabs, selectedIdx, false)
	notificationWidth := lipgloss.Width(notificationContent)
	if lipgloss.Width(row)+notificationWidth > width {
		row = renderTabRow(tabs, selectedIdx, true)
	}

	gapWidth := max(width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if notificationContent != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notificationContent)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

func renderTabRow(tabs []string, selectedIdx int, compact bool) string {
	rendered := make([]string, 0, len(tabs))
	for i, name := range tabs {
		if i == selectedIdx {
			rendered = append(rendered, ActiveTabStyle.Render(name))
			continue
		}
		if compact {
			name = abbreviate(name)
		}
		rendered = append(rendered, TabStyle.Render(name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// abbreviate keeps the first letter of each word: "Leads Table" -> "LT"
func abbreviate(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteString(string([]rune(word)[:1]))
	}
	return b.String()
}
