package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/leadbook/internal/tui/state"
	"github.com/thenoetrevino/leadbook/internal/tui/theme"
)

type chip struct {
	icon       string
	foreground string
	background string
}

func chipFor(level state.NotificationLevel) chip {
	switch level {
	case state.LevelWarning:
		return chip{icon: "⚠", foreground: theme.WarningFg, background: theme.WarningBg}
	case state.LevelError:
		return chip{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	default:
		return chip{icon: "🔔", foreground: theme.InfoFg, background: theme.InfoBg}
	}
}

// RenderInline renders a notification as a compact chip for the tab bar
func RenderInline(n state.Notification) string {
	c := chipFor(n.Level)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.foreground)).
		Background(lipgloss.Color(c.background)).
		Padding(0, 1).
		Render(c.icon + " " + n.Message)
}
