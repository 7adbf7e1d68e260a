package models

import (
	"testing"
	"time"
)

// ============================================================================
// Job Type Tests
// ============================================================================

func TestParseJobType(t *testing.T) {
	tests := []struct {
		input   string
		want    JobType
		wantErr bool
	}{
		{"Residential", JobTypeResidential, false},
		{"commercial", JobTypeCommercial, false},
		{"", JobTypeUnknown, false},
		{"Other", JobTypeUnknown, false},
		{"  unknown ", JobTypeUnknown, false},
		{"Industrial", "", true},
	}

	for _, tt := range tests {
		got, err := ParseJobType(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseJobType(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseJobType(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseJobType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ============================================================================
// Lead Status Tests
// ============================================================================

func TestParseLeadStatus_Names(t *testing.T) {
	for _, status := range LeadStatuses {
		got, err := ParseLeadStatus(string(status))
		if err != nil {
			t.Fatalf("ParseLeadStatus(%q) unexpected error: %v", status, err)
		}
		if got != status {
			t.Errorf("ParseLeadStatus(%q) = %q", status, got)
		}
	}

	got, err := ParseLeadStatus("good lead")
	if err != nil || got != LeadStatusGoodLead {
		t.Errorf("Expected case-insensitive match for 'good lead', got %q (%v)", got, err)
	}
}

func TestParseLeadStatus_IndexAlias(t *testing.T) {
	got, err := ParseLeadStatus("1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != LeadStatusGoodLead {
		t.Errorf("Expected index 1 to alias 'Good Lead', got %q", got)
	}

	if _, err := ParseLeadStatus("6"); err == nil {
		t.Error("Expected error for out-of-range index")
	}
	if _, err := ParseLeadStatus("Hot Lead"); err == nil {
		t.Error("Expected error for unknown status name")
	}
}

func TestLeadStatus_IndexAndNext(t *testing.T) {
	if LeadStatusClosed.Index() != 5 {
		t.Errorf("Expected Closed index 5, got %d", LeadStatusClosed.Index())
	}
	if LeadStatus("bogus").Index() != -1 {
		t.Error("Expected -1 for unknown status")
	}
	if LeadStatusInSystem.Next() != LeadStatusGoodLead {
		t.Errorf("Expected In System -> Good Lead, got %q", LeadStatusInSystem.Next())
	}
	if LeadStatusClosed.Next() != LeadStatusInSystem {
		t.Errorf("Expected Closed to wrap to In System, got %q", LeadStatusClosed.Next())
	}
}

// ============================================================================
// Composition Tests
// ============================================================================

func TestLead_DisplayName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Jane", "Doe", "Jane Doe"},
		{"Jane", "", "Jane"},
		{"", "Doe", "Doe"},
		{" ", " ", ""},
	}

	for _, tt := range tests {
		l := &Lead{FirstName: tt.first, LastName: tt.last}
		if got := l.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestLead_DisplayAddress(t *testing.T) {
	full := &Lead{
		AddressLine1: "12 Main St",
		AddressLine2: "Apt 4",
		City:         "Springfield",
		State:        "IL",
		Zipcode:      "62701",
	}
	if got := full.DisplayAddress(); got != "12 Main St, Apt 4, Springfield, IL 62701" {
		t.Errorf("Unexpected full address: %q", got)
	}

	partial := &Lead{AddressLine1: "12 Main St", Zipcode: "62701"}
	if got := partial.DisplayAddress(); got != "12 Main St, 62701" {
		t.Errorf("Unexpected partial address: %q", got)
	}

	empty := &Lead{}
	if got := empty.DisplayAddress(); got != "" {
		t.Errorf("Expected empty address, got %q", got)
	}
}

func TestCalendarKey(t *testing.T) {
	d := time.Date(2024, time.March, 9, 15, 4, 5, 0, time.UTC)
	if got := CalendarKey(d); got != "2024-03-09" {
		t.Errorf("CalendarKey = %q, want 2024-03-09", got)
	}
}

func TestTwilioCredential_MaskedToken(t *testing.T) {
	c := &TwilioCredential{AuthToken: "abcdef123456"}
	if got := c.MaskedToken(); got != "********3456" {
		t.Errorf("MaskedToken = %q", got)
	}
	short := &TwilioCredential{AuthToken: "abc"}
	if got := short.MaskedToken(); got != "****" {
		t.Errorf("MaskedToken for short token = %q", got)
	}
}
