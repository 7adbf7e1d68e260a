package capability

import (
	"errors"
	"strings"
	"testing"
)

func TestInvoke_AlwaysNotImplemented(t *testing.T) {
	for _, c := range All() {
		err := c.Invoke()
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("%s: expected ErrNotImplemented, got %v", c.ID(), err)
		}
		if !strings.Contains(err.Error(), "Coming Soon") {
			t.Errorf("%s: expected Coming Soon message, got %q", c.ID(), err)
		}
	}
}

func TestMessage(t *testing.T) {
	c, ok := Lookup("email/gmail")
	if !ok {
		t.Fatal("Expected Email/Gmail to be registered")
	}
	if c.Message() != "Gmail - Coming Soon" {
		t.Errorf("Unexpected message %q", c.Message())
	}

	calls, ok := Lookup("Calls")
	if !ok || calls.Message() != "Calls - Coming Soon" {
		t.Errorf("Unexpected Calls capability: %+v", calls)
	}
}

func TestGroup(t *testing.T) {
	if n := len(Group("Forms")); n != 4 {
		t.Errorf("Expected 4 form placeholders, got %d", n)
	}
	if n := len(Group("nope")); n != 0 {
		t.Errorf("Expected no placeholders for unknown group, got %d", n)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Group = "mutated"
	if All()[0].Group == "mutated" {
		t.Error("All must not expose the registry")
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown("Email")
	for _, want := range []string{"# Email", "## Gmail", "SMTP - Coming Soon"} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown missing %q:\n%s", want, md)
		}
	}
	if RenderPage("Email", 60) == "" {
		t.Error("Expected rendered page")
	}
}
