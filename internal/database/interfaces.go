package database

import (
	"context"

	"github.com/thenoetrevino/leadbook/internal/models"
)

// DataStore defines the unified interface for all data operations needed by the services.
// Services depend on the smaller interfaces they declare themselves; DataStore
// documents everything the Repository offers in one place.
type DataStore interface {
	// Leads
	CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error)
	GetAllLeads(ctx context.Context) ([]*models.Lead, error)
	GetLeadByID(ctx context.Context, id int) (*models.Lead, error)
	UpdateLeadField(ctx context.Context, id int, column, value string) error
	DeleteLead(ctx context.Context, id int) error
	CountLeads(ctx context.Context) (int, error)

	// Calendar notes
	GetNote(ctx context.Context, date string) (string, error)
	SaveNote(ctx context.Context, date, notes string) error
	ListNotes(ctx context.Context, from, to string) ([]*models.CalendarNote, error)

	// Twilio credentials
	GetCredential(ctx context.Context) (*models.TwilioCredential, error)
	ReplaceCredential(ctx context.Context, cred models.TwilioCredential) error
}
