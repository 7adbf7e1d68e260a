package lead

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/thenoetrevino/leadbook/internal/testutil"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(testutil.SetupTestRepo(t), nil)
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateLead_ForcesInSystem(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	lead, err := svc.CreateLead(ctx, CreateLeadRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "555-0100",
		JobType:   "Residential",
	})
	if err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}
	if lead.ID <= 0 {
		t.Errorf("Expected assigned ID, got %d", lead.ID)
	}
	if lead.LeadStatus != models.LeadStatusInSystem {
		t.Errorf("Expected status In System, got %q", lead.LeadStatus)
	}
	if lead.JobType != models.JobTypeResidential {
		t.Errorf("Expected Residential, got %q", lead.JobType)
	}
}

func TestCreateLead_BlankFieldsAccepted(t *testing.T) {
	svc := newTestService(t)

	lead, err := svc.CreateLead(context.Background(), CreateLeadRequest{})
	if err != nil {
		t.Fatalf("Expected blank lead to be accepted, got %v", err)
	}
	if lead.JobType != models.JobTypeUnknown {
		t.Errorf("Expected empty job type to become Unknown, got %q", lead.JobType)
	}
}

func TestCreateLead_InvalidJobType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateLead(ctx, CreateLeadRequest{FirstName: "X", JobType: "Industrial"})
	if !errors.Is(err, ErrInvalidJobType) {
		t.Fatalf("Expected ErrInvalidJobType, got %v", err)
	}

	leads, err := svc.ListLeads(ctx)
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 0 {
		t.Errorf("Rejected lead must not be stored, found %d", len(leads))
	}
}

// ============================================================================
// READ
// ============================================================================

func TestListLeads_ReflectsEveryWrite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, _ := svc.CreateLead(ctx, CreateLeadRequest{FirstName: "A"})
	b, _ := svc.CreateLead(ctx, CreateLeadRequest{FirstName: "B"})

	if err := svc.UpdateLeadField(ctx, a.ID, "city", "Springfield"); err != nil {
		t.Fatalf("UpdateLeadField failed: %v", err)
	}
	if err := svc.DeleteLead(ctx, b.ID); err != nil {
		t.Fatalf("DeleteLead failed: %v", err)
	}

	leads, err := svc.ListLeads(ctx)
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("Expected 1 lead, got %d", len(leads))
	}
	if leads[0].City != "Springfield" {
		t.Errorf("Expected updated city, got %q", leads[0].City)
	}
}

func TestGetLead_Errors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.GetLead(ctx, 0); !errors.Is(err, ErrInvalidLeadID) {
		t.Errorf("Expected ErrInvalidLeadID, got %v", err)
	}
	if _, err := svc.GetLead(ctx, 42); !errors.Is(err, ErrLeadNotFound) {
		t.Errorf("Expected ErrLeadNotFound, got %v", err)
	}
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdateLeadField_OnlyTouchesOneField(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateLead(ctx, CreateLeadRequest{FirstName: "Jane", LastName: "Doe", Phone: "555"})
	if err := svc.UpdateLeadField(ctx, created.ID, "Phone Number", "555-0199"); err != nil {
		t.Fatalf("UpdateLeadField failed: %v", err)
	}

	got, err := svc.GetLead(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetLead failed: %v", err)
	}
	want := *created
	want.Phone = "555-0199"
	if *got != want {
		t.Errorf("Unexpected lead after update:\n got %+v\nwant %+v", *got, want)
	}
}

func TestUpdateLeadField_Status(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateLead(ctx, CreateLeadRequest{FirstName: "Jane"})

	tests := []struct {
		value string
		want  models.LeadStatus
	}{
		{"Good Lead", models.LeadStatusGoodLead},
		{"closed", models.LeadStatusClosed},
		{"3", models.LeadStatusBadLead},
	}
	for _, tt := range tests {
		if err := svc.UpdateLeadField(ctx, created.ID, "Lead Status", tt.value); err != nil {
			t.Fatalf("UpdateLeadField(%q) failed: %v", tt.value, err)
		}
		got, _ := svc.GetLead(ctx, created.ID)
		if got.LeadStatus != tt.want {
			t.Errorf("After %q expected %q, got %q", tt.value, tt.want, got.LeadStatus)
		}
	}

	err := svc.UpdateLeadField(ctx, created.ID, "status", "Hot")
	if !errors.Is(err, ErrInvalidLeadStatus) {
		t.Errorf("Expected ErrInvalidLeadStatus, got %v", err)
	}
}

func TestUpdateLeadField_JobType(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateLead(ctx, CreateLeadRequest{JobType: "Commercial"})

	if err := svc.UpdateLeadField(ctx, created.ID, "type", "other"); err != nil {
		t.Fatalf("UpdateLeadField failed: %v", err)
	}
	got, _ := svc.GetLead(ctx, created.ID)
	if got.JobType != models.JobTypeUnknown {
		t.Errorf("Expected Other to store Unknown, got %q", got.JobType)
	}

	if err := svc.UpdateLeadField(ctx, created.ID, "job_type", "Farm"); !errors.Is(err, ErrInvalidJobType) {
		t.Errorf("Expected ErrInvalidJobType, got %v", err)
	}
}

func TestUpdateLeadField_Rejections(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	created, _ := svc.CreateLead(ctx, CreateLeadRequest{FirstName: "Jane"})

	if err := svc.UpdateLeadField(ctx, created.ID, "id", "99"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Expected id to be rejected, got %v", err)
	}
	if err := svc.UpdateLeadField(ctx, created.ID, "favourite_colour", "blue"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Expected ErrUnknownField, got %v", err)
	}
	if err := svc.UpdateLeadField(ctx, created.ID+100, "city", "Nowhere"); !errors.Is(err, ErrLeadNotFound) {
		t.Errorf("Expected ErrLeadNotFound, got %v", err)
	}
	if err := svc.UpdateLeadField(ctx, -1, "city", "Nowhere"); !errors.Is(err, ErrInvalidLeadID) {
		t.Errorf("Expected ErrInvalidLeadID, got %v", err)
	}
}

// ============================================================================
// DELETE
// ============================================================================

func TestDeleteLead_MissingIsNoop(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	kept, _ := svc.CreateLead(ctx, CreateLeadRequest{FirstName: "Kept"})

	if err := svc.DeleteLead(ctx, kept.ID+1); err != nil {
		t.Fatalf("Expected no error deleting missing lead, got %v", err)
	}
	leads, _ := svc.ListLeads(ctx)
	if len(leads) != 1 {
		t.Errorf("Expected existing lead to survive, got %d leads", len(leads))
	}
}

// ============================================================================
// FIELD NAMES
// ============================================================================

func TestNormalizeField(t *testing.T) {
	tests := map[string]string{
		"first_name":     "first_name",
		"First Name":     "first_name",
		"Address Line 1": "address_line1",
		"address-line-2": "address_line2",
		"Zip":            "zipcode",
		"Phone Number":   "phone",
		"Referred By":    "referred_by",
		"Job Type":       "job_type",
		"status":         "lead_status",
	}
	for in, want := range tests {
		got, err := NormalizeField(in)
		if err != nil {
			t.Errorf("NormalizeField(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("NormalizeField(%q) = %q, want %q", in, got, want)
		}
	}

	for _, label := range FieldLabels {
		if _, err := NormalizeField(label); err != nil {
			t.Errorf("Header label %q does not resolve: %v", label, err)
		}
	}
}

func TestFieldValue_CoversEveryField(t *testing.T) {
	l := &models.Lead{
		FirstName: "a", LastName: "b", AddressLine1: "c", AddressLine2: "d",
		City: "e", State: "f", Zipcode: "g", Phone: "h", Email: "i",
		Notes: "j", ReferredBy: "k",
		JobType:    models.JobTypeCommercial,
		LeadStatus: models.LeadStatusBadLead,
	}

	seen := map[string]bool{}
	for _, field := range Fields {
		v := FieldValue(l, field)
		if v == "" {
			t.Errorf("FieldValue(%q) is empty", field)
		}
		if seen[v] {
			t.Errorf("FieldValue(%q) = %q duplicates another field", field, v)
		}
		seen[v] = true
	}
	if FieldValue(l, "id") != "" {
		t.Error("Expected no value for a non-field")
	}
}

// ============================================================================
// STORAGE FAILURES
// ============================================================================

// newFailingService returns a service over a store holding one lead, with a
// logger capturing what the service reports
func newFailingService(t *testing.T) (Service, *sqlx.DB, *models.Lead, *bytes.Buffer) {
	t.Helper()
	repo, db := testutil.SetupTestRepoWithDB(t)
	lead := testutil.CreateTestLead(t, repo, "Jane", "Doe")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	return NewService(repo, logger), db, lead, &logs
}

func assertStorageError(t *testing.T, err error, logs *bytes.Buffer, logMsg string) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected the storage failure to be returned")
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("Expected a wrapped error, got %v", err)
	}
	if !strings.Contains(err.Error(), testutil.StorageFailure) {
		t.Errorf("Expected the driver error in %q", err)
	}
	if errors.Is(err, ErrLeadNotFound) {
		t.Errorf("Storage failure must not be reported as not found: %v", err)
	}
	if !strings.Contains(logs.String(), logMsg) {
		t.Errorf("Expected %q to be logged, got %q", logMsg, logs.String())
	}
}

func assertOnlyLead(t *testing.T, svc Service, want *models.Lead) {
	t.Helper()
	leads, err := svc.ListLeads(context.Background())
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("Expected the store to still hold 1 lead, got %d", len(leads))
	}
	if *leads[0] != *want {
		t.Errorf("Expected lead to be unchanged\nwant %+v\ngot  %+v", want, leads[0])
	}
}

func TestCreateLead_StorageFailure(t *testing.T) {
	svc, db, lead, logs := newFailingService(t)
	testutil.FailWrites(t, db, "leads", "INSERT")

	created, err := svc.CreateLead(context.Background(), CreateLeadRequest{FirstName: "John"})
	assertStorageError(t, err, logs, "failed to create lead")
	if created != nil {
		t.Errorf("Expected no lead on failure, got %+v", created)
	}
	assertOnlyLead(t, svc, lead)
}

func TestUpdateLeadField_StorageFailure(t *testing.T) {
	svc, db, lead, logs := newFailingService(t)
	testutil.FailWrites(t, db, "leads", "UPDATE")

	err := svc.UpdateLeadField(context.Background(), lead.ID, "lead_status", "Closed")
	assertStorageError(t, err, logs, "failed to update lead")
	assertOnlyLead(t, svc, lead)
}

func TestDeleteLead_StorageFailure(t *testing.T) {
	svc, db, lead, logs := newFailingService(t)
	testutil.FailWrites(t, db, "leads", "DELETE")

	err := svc.DeleteLead(context.Background(), lead.ID)
	assertStorageError(t, err, logs, "failed to delete lead")
	assertOnlyLead(t, svc, lead)
}
