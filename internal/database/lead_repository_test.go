package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/leadbook/internal/models"
)

func TestLeadCreateAndList(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	input := &models.Lead{
		FirstName:    "Jane",
		LastName:     "Doe",
		AddressLine1: "12 Main St",
		City:         "Springfield",
		State:        "IL",
		Zipcode:      "62701",
		Phone:        "555-0100",
		Email:        "jane@x.com",
		Notes:        "Wants a deck",
		ReferredBy:   "Bob",
		JobType:      models.JobTypeResidential,
		LeadStatus:   models.LeadStatusInSystem,
	}

	created, err := repo.CreateLead(ctx, input)
	if err != nil {
		t.Fatalf("Failed to create lead: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Lead should have a valid ID")
	}

	leads, err := repo.GetAllLeads(ctx)
	if err != nil {
		t.Fatalf("Failed to list leads: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("Expected 1 lead, got %d", len(leads))
	}

	got := leads[0]
	want := *input
	want.ID = created.ID
	if *got != want {
		t.Errorf("Stored lead mismatch:\n got  %+v\n want %+v", *got, want)
	}
}

func TestLeadListOrderedByID(t *testing.T) {
	repo := setupTestRepo(t)

	a := createTestLead(t, repo, "A", "")
	b := createTestLead(t, repo, "B", "")
	c := createTestLead(t, repo, "C", "")

	leads, err := repo.GetAllLeads(context.Background())
	if err != nil {
		t.Fatalf("Failed to list leads: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("Expected 3 leads, got %d", len(leads))
	}
	for i, want := range []int{a.ID, b.ID, c.ID} {
		if leads[i].ID != want {
			t.Errorf("Position %d: expected id %d, got %d", i, want, leads[i].ID)
		}
	}
}

func TestLeadListEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	leads, err := repo.GetAllLeads(context.Background())
	if err != nil {
		t.Fatalf("Failed to list leads: %v", err)
	}
	if leads == nil || len(leads) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", leads)
	}
}

func TestLeadUpdateField(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	lead := createTestLead(t, repo, "Jane", "Doe")

	if err := repo.UpdateLeadField(ctx, lead.ID, "phone", "555-0199"); err != nil {
		t.Fatalf("Failed to update phone: %v", err)
	}

	got, err := repo.GetLeadByID(ctx, lead.ID)
	if err != nil {
		t.Fatalf("Failed to get lead: %v", err)
	}
	if got.Phone != "555-0199" {
		t.Errorf("Expected phone '555-0199', got '%s'", got.Phone)
	}
	if got.FirstName != "Jane" || got.LastName != "Doe" {
		t.Errorf("Other fields changed: %+v", got)
	}
}

func TestLeadUpdateFieldRejectsUnknownColumn(t *testing.T) {
	repo := setupTestRepo(t)
	lead := createTestLead(t, repo, "Jane", "Doe")

	for _, column := range []string{"id", "nope", "phone = 'x'; DROP TABLE leads; --"} {
		if err := repo.UpdateLeadField(context.Background(), lead.ID, column, "x"); err == nil {
			t.Errorf("Expected error for column %q", column)
		}
	}

	if _, err := repo.GetLeadByID(context.Background(), lead.ID); err != nil {
		t.Errorf("Lead should be untouched: %v", err)
	}
}

func TestLeadUpdateFieldMissingID(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.UpdateLeadField(context.Background(), 999, "phone", "x")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLeadDelete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	lead := createTestLead(t, repo, "Jane", "Doe")

	if err := repo.DeleteLead(ctx, lead.ID); err != nil {
		t.Fatalf("Failed to delete lead: %v", err)
	}

	if _, err := repo.GetLeadByID(ctx, lead.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op
	if err := repo.DeleteLead(ctx, lead.ID); err != nil {
		t.Errorf("Deleting a missing lead should not fail: %v", err)
	}
}

func TestLeadIDsNotReused(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := createTestLead(t, repo, "First", "")
	if err := repo.DeleteLead(ctx, first.ID); err != nil {
		t.Fatalf("Failed to delete lead: %v", err)
	}
	second := createTestLead(t, repo, "Second", "")

	if second.ID == first.ID {
		t.Errorf("Expected a fresh id after delete, got %d again", second.ID)
	}
}

func TestLeadCount(t *testing.T) {
	repo := setupTestRepo(t)
	createTestLead(t, repo, "A", "")
	createTestLead(t, repo, "B", "")

	n, err := repo.CountLeads(context.Background())
	if err != nil {
		t.Fatalf("Failed to count leads: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 leads, got %d", n)
	}
}
