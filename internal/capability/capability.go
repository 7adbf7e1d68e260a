// Package capability names the integration areas that are not built yet.
// Every capability answers with ErrNotImplemented.
package capability

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotImplemented is wrapped by every Invoke result
var ErrNotImplemented = errors.New("not implemented")

// Capability is a named placeholder grouped under a TUI tab
type Capability struct {
	Group       string `json:"group"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ID is "Group/Name", or just the group when the capability is the whole tab
func (c Capability) ID() string {
	if c.Name == "" {
		return c.Group
	}
	return c.Group + "/" + c.Name
}

// Title is the user-facing name, e.g. "Gmail" or "Calls"
func (c Capability) Title() string {
	if c.Name == "" {
		return c.Group
	}
	return c.Name
}

// Message is the fixed placeholder response
func (c Capability) Message() string {
	return c.Title() + " - Coming Soon"
}

// Invoke always fails with ErrNotImplemented
func (c Capability) Invoke() error {
	return fmt.Errorf("%s: %w", c.Message(), ErrNotImplemented)
}

var registry = []Capability{
	{Group: "Calls", Description: "Place and log calls to leads."},
	{Group: "Email", Name: "Gmail", Description: "Send email through a Gmail account."},
	{Group: "Email", Name: "SMTP", Description: "Send email through any SMTP server."},
	{Group: "Messaging", Name: "Twilio", Description: "Text leads through Twilio."},
	{Group: "Forms", Name: "My Forms", Description: "Lead capture forms you have built."},
	{Group: "Forms", Name: "Create", Description: "Build a new lead capture form."},
	{Group: "Forms", Name: "Embed", Description: "Embed a form on your website."},
	{Group: "Forms", Name: "Settings", Description: "Form notifications and defaults."},
	{Group: "Integrations", Name: "Google", Description: "Connect a Google account."},
	{Group: "Integrations", Name: "Zapier", Description: "Push leads to Zapier."},
	{Group: "Calendar", Name: "Google Calendar", Description: "Sync notes with Google Calendar."},
	{Group: "Calendar", Name: "Calendly", Description: "Import Calendly bookings."},
	{Group: "Settings", Description: "Application settings."},
}

// All returns every placeholder in registration order
func All() []Capability {
	out := make([]Capability, len(registry))
	copy(out, registry)
	return out
}

// Group returns the placeholders shown under one tab
func Group(group string) []Capability {
	var out []Capability
	for _, c := range registry {
		if strings.EqualFold(c.Group, group) {
			out = append(out, c)
		}
	}
	return out
}

// Lookup finds a capability by ID ("Email/Gmail") or by bare title ("Gmail"), case-insensitively.
// An exact ID wins over a title, so "Settings" is the Settings tab, not Forms/Settings.
func Lookup(id string) (Capability, bool) {
	for _, c := range registry {
		if strings.EqualFold(c.ID(), id) {
			return c, true
		}
	}
	for _, c := range registry {
		if strings.EqualFold(c.Title(), id) {
			return c, true
		}
	}
	return Capability{}, false
}
