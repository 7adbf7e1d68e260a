package notifications

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/leadbook/internal/tui/state"
)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		icon  string
	}{
		{state.LevelInfo, "🔔"},
		{state.LevelWarning, "⚠"},
		{state.LevelError, "✕"},
	}

	for _, tt := range tests {
		got := RenderInline(state.Notification{Level: tt.level, Message: "Lead #3 saved"})
		if !strings.Contains(got, tt.icon) {
			t.Errorf("level %d: expected icon %q in %q", tt.level, tt.icon, got)
		}
		if !strings.Contains(got, "Lead #3 saved") {
			t.Errorf("level %d: message missing from %q", tt.level, got)
		}
	}
}
