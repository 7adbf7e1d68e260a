package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/leadbook/internal/database"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// SetupTestDB creates an in-memory database with the leads, calendar and
// credential tables
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:", database.MigrateAll)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// SetupTestRepo returns a Repository whose three stores share one in-memory database
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	repo, _ := SetupTestRepoWithDB(t)
	return repo
}

// SetupTestRepoWithDB is SetupTestRepo that also returns the shared handle
func SetupTestRepoWithDB(t *testing.T) (*database.Repository, *sqlx.DB) {
	t.Helper()
	db := SetupTestDB(t)
	return database.NewRepository(db, db, db), db
}

// StorageFailure is the message of writes aborted by FailWrites
const StorageFailure = "storage unavailable"

// FailWrites makes the given statements ("INSERT", "UPDATE", "DELETE") on
// table abort with StorageFailure, until the test ends
func FailWrites(t *testing.T, db *sqlx.DB, table string, ops ...string) {
	t.Helper()
	for _, op := range ops {
		op = strings.ToUpper(op)
		trigger := fmt.Sprintf("fail_%s_%s", strings.ToLower(op), table)
		stmt := fmt.Sprintf(
			`CREATE TRIGGER %s BEFORE %s ON %s BEGIN SELECT RAISE(ABORT, '%s'); END`,
			trigger, op, table, StorageFailure,
		)
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to install %s: %v", trigger, err)
		}
	}
}

// CreateTestLead inserts a lead in the default status and returns it
func CreateTestLead(t *testing.T, repo *database.Repository, first, last string) *models.Lead {
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

// CreateTestNote stores a calendar note for date (YYYY-MM-DD)
func CreateTestNote(t *testing.T, repo *database.Repository, date, text string) {
	t.Helper()
	if err := repo.SaveNote(context.Background(), date, text); err != nil {
		t.Fatalf("Failed to save test note: %v", err)
	}
}
