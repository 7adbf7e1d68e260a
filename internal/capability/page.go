package capability

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown describes a tab's placeholders as a markdown page
func Markdown(group string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", group)
	for _, c := range Group(group) {
		if c.Name != "" {
			fmt.Fprintf(&b, "## %s\n\n", c.Name)
		}
		fmt.Fprintf(&b, "%s\n\n> **%s**\n\n", c.Description, c.Message())
	}
	return b.String()
}

// RenderPage renders a tab's placeholder page for a terminal of the given width.
// The raw markdown is returned if rendering fails.
func RenderPage(group string, width int) string {
	md := Markdown(group)
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
