package layers

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestCreateCenteredLayer(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
	}{
		{"normal screen", "Test Content", 120, 40},
		{"narrow screen", "Content", 60, 20},
		{"content wider than screen", strings.Repeat("x", 80), 40, 10},
		{"multiline", "a\nb\nc", 30, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight)
			if layer == nil {
				t.Fatal("layer should not be nil for non-empty content")
			}
			out := lipgloss.NewCanvas(layer).Render()
			wantY := max((tt.screenHeight-lipgloss.Height(tt.content))/2, 0)
			lines := strings.Split(out, "\n")
			if len(lines) <= wantY {
				t.Fatalf("expected content at line %d, got %d lines", wantY, len(lines))
			}
			first := strings.Split(tt.content, "\n")[0]
			if !strings.Contains(lines[wantY], first) {
				t.Errorf("line %d = %q, want it to contain %q", wantY, lines[wantY], first)
			}
		})
	}
}

func TestCreateCenteredLayer_Empty(t *testing.T) {
	if layer := CreateCenteredLayer("", 100, 40); layer != nil {
		t.Error("expected nil layer for empty content")
	}
}

func TestModalWidth(t *testing.T) {
	tests := []struct {
		screen, want int
	}{
		{40, ModalMinWidth},
		{100, 50},
		{300, ModalMaxWidth},
	}
	for _, tt := range tests {
		if got := ModalWidth(tt.screen); got != tt.want {
			t.Errorf("ModalWidth(%d) = %d, want %d", tt.screen, got, tt.want)
		}
	}
}

func TestCompose(t *testing.T) {
	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 5)
	out := Compose(strings.TrimSuffix(base, "\n"), "MODAL", 20, 5)
	if !strings.Contains(out, "MODAL") {
		t.Errorf("expected modal in composed view, got:\n%s", out)
	}

	plain := Compose("base only", "", 20, 5)
	if !strings.Contains(plain, "base only") {
		t.Errorf("expected base content, got %q", plain)
	}
}
