// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil when content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalWidth returns the outer width of a dialog for the given screen width
func ModalWidth(screenWidth int) int {
	return min(max(screenWidth/ModalWidthDivisor, ModalMinWidth), ModalMaxWidth)
}

// Compose stacks a base view with an optional centered modal
func Compose(base, modal string, screenWidth, screenHeight int) string {
	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if l := CreateCenteredLayer(modal, screenWidth, screenHeight); l != nil {
		layers = append(layers, l)
	}
	return lipgloss.NewCanvas(layers...).Render()
}
