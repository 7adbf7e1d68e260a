package cli

import (
	"testing"

	"github.com/thenoetrevino/leadbook/internal/app"
	"github.com/thenoetrevino/leadbook/internal/database"
	"github.com/thenoetrevino/leadbook/internal/models"
	"github.com/thenoetrevino/leadbook/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the repository and App instance
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo)
}

// CreateTestLead wraps testutil.CreateTestLead for CLI tests and returns the new ID
func CreateTestLead(t *testing.T, repo *database.Repository, first, last string) int {
	t.Helper()
	return testutil.CreateTestLead(t, repo, first, last).ID
}

// GetLead reads a lead straight from the store, failing the test on error
func GetLead(t *testing.T, repo *database.Repository, id int) *models.Lead {
	t.Helper()
	lead, err := repo.GetLeadByID(t.Context(), id)
	if err != nil {
		t.Fatalf("Failed to read lead %d: %v", id, err)
	}
	return lead
}
