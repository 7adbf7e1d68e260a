package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/leadbook/internal/models"
)

func TestCredentialGetEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetCredential(context.Background())
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestCredentialReplaceKeepsOneRow(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if err := repo.ReplaceCredential(ctx, models.TwilioCredential{SID: "AC1", AuthToken: "t1"}); err != nil {
		t.Fatalf("Failed to save credentials: %v", err)
	}
	if err := repo.ReplaceCredential(ctx, models.TwilioCredential{SID: "AC2", AuthToken: "t2"}); err != nil {
		t.Fatalf("Failed to replace credentials: %v", err)
	}

	var count int
	if err := repo.Credentials.db.Get(&count, "SELECT COUNT(*) FROM twilio_credentials"); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 credential row, got %d", count)
	}

	cred, err := repo.GetCredential(ctx)
	if err != nil {
		t.Fatalf("Failed to load credentials: %v", err)
	}
	if cred.SID != "AC2" || cred.AuthToken != "t2" {
		t.Errorf("Expected latest pair, got %+v", cred)
	}
}
