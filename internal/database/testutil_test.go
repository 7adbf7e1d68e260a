package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with every table
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:", MigrateAll)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// setupTestRepo returns a Repository whose three stores share one in-memory database
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db := setupTestDB(t)
	return NewRepository(db, db, db)
}

// createTestLead inserts a lead with the given names and returns it
func createTestLead(t *testing.T, repo *Repository, first, last string) *models.Lead {
	t.Helper()
	lead, err := repo.CreateLead(context.Background(), &models.Lead{
		FirstName:  first,
		LastName:   last,
		JobType:    models.JobTypeUnknown,
		LeadStatus: models.DefaultLeadStatus,
	})
	if err != nil {
		t.Fatalf("Failed to create test lead: %v", err)
	}
	return lead
}
