package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures RenderStatusBar
type StatusBarProps struct {
	Width int
	// Left is usually the key hints of the active tab
	Left string
	// Right is usually a position or count, e.g. "lead 3/12"
	Right string
	// EditMode shows the EDIT badge on the left
	EditMode bool
}

// RenderStatusBar renders a one-line status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	left := props.Left
	if props.EditMode {
		left = EditModeBadgeStyle.Render("EDIT") + " " + left
	}

	leftRendered := StatusBarStyle.Render(left)
	rightRendered := StatusBarStyle.Render(props.Right)

	// Calculate space between left and right text
	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
