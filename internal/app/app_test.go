package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/leadbook/internal/config"
	"github.com/thenoetrevino/leadbook/internal/services/lead"
	"github.com/thenoetrevino/leadbook/internal/testutil"
)

func TestNew(t *testing.T) {
	app := New(testutil.SetupTestRepo(t))

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.LeadService == nil {
		t.Error("Expected LeadService to be initialized")
	}
	if app.CalendarService == nil {
		t.Error("Expected CalendarService to be initialized")
	}
	if app.CredentialService == nil {
		t.Error("Expected CredentialService to be initialized")
	}
	if app.Exporter == nil {
		t.Error("Expected Exporter to be initialized")
	}
	if app.Config() == nil {
		t.Error("Expected default config")
	}
}

func TestOpen_PersistsAcrossRestart(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Storage.LeadsDB = filepath.Join(dir, "leads.db")
	cfg.Storage.CalendarDB = filepath.Join(dir, "calendar.db")
	cfg.Storage.CredentialsDB = filepath.Join(dir, "credentials.db")

	first, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := first.LeadService.CreateLead(ctx, lead.CreateLeadRequest{FirstName: "Jane"}); err != nil {
		t.Fatalf("CreateLead failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer func() { _ = second.Close() }()

	leads, err := second.LeadService.ListLeads(ctx)
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 || leads[0].FirstName != "Jane" {
		t.Errorf("Expected persisted lead, got %+v", leads)
	}
}

func TestClose(t *testing.T) {
	app := New(testutil.SetupTestRepo(t))

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
