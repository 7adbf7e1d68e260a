package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// StorePaths names the SQLite file behind each store. Paths may coincide.
type StorePaths struct {
	Leads       string
	Calendar    string
	Credentials string
}

// Repository provides a unified interface to all data operations.
// It composes the per-store repositories and owns their handles.
type Repository struct {
	Leads       *LeadRepo
	Calendar    *CalendarRepo
	Credentials *CredentialRepo

	handles []*sqlx.DB
}

// NewRepository wraps already-open handles. Close on the result does not close them.
func NewRepository(leadsDB, calendarDB, credentialsDB *sqlx.DB) *Repository {
	return &Repository{
		Leads:       NewLeadRepo(leadsDB),
		Calendar:    NewCalendarRepo(calendarDB),
		Credentials: NewCredentialRepo(credentialsDB),
	}
}

// Open opens (and migrates) every store file once. Stores that share a path
// share a handle. The returned Repository owns the handles.
func Open(ctx context.Context, paths StorePaths) (*Repository, error) {
	opened := map[string]*sqlx.DB{}
	var handles []*sqlx.DB

	open := func(path string, migrate Migration) (*sqlx.DB, error) {
		if db, ok := opened[path]; ok {
			if err := migrate(ctx, db); err != nil {
				return nil, fmt.Errorf("failed to run migrations for %s: %w", path, err)
			}
			return db, nil
		}
		db, err := InitDB(ctx, path, migrate)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize %s: %w", path, err)
		}
		opened[path] = db
		handles = append(handles, db)
		return db, nil
	}

	closeAll := func() {
		for _, db := range handles {
			_ = db.Close()
		}
	}

	leadsDB, err := open(paths.Leads, MigrateLeads)
	if err != nil {
		closeAll()
		return nil, err
	}
	calendarDB, err := open(paths.Calendar, MigrateCalendar)
	if err != nil {
		closeAll()
		return nil, err
	}
	credentialsDB, err := open(paths.Credentials, MigrateCredentials)
	if err != nil {
		closeAll()
		return nil, err
	}

	repo := NewRepository(leadsDB, calendarDB, credentialsDB)
	repo.handles = handles
	return repo, nil
}

// Close closes the handles opened by Open
func (r *Repository) Close() error {
	var errs []error
	for _, db := range r.handles {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.handles = nil
	return errors.Join(errs...)
}

// Wrapper methods for LeadRepo
func (r *Repository) CreateLead(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	return r.Leads.Create(ctx, lead)
}

func (r *Repository) GetAllLeads(ctx context.Context) ([]*models.Lead, error) {
	return r.Leads.GetAll(ctx)
}

func (r *Repository) GetLeadByID(ctx context.Context, id int) (*models.Lead, error) {
	return r.Leads.GetByID(ctx, id)
}

func (r *Repository) UpdateLeadField(ctx context.Context, id int, column, value string) error {
	return r.Leads.UpdateField(ctx, id, column, value)
}

func (r *Repository) DeleteLead(ctx context.Context, id int) error {
	return r.Leads.Delete(ctx, id)
}

func (r *Repository) CountLeads(ctx context.Context) (int, error) {
	return r.Leads.Count(ctx)
}

// Wrapper methods for CalendarRepo
func (r *Repository) GetNote(ctx context.Context, date string) (string, error) {
	return r.Calendar.GetNote(ctx, date)
}

func (r *Repository) SaveNote(ctx context.Context, date, notes string) error {
	return r.Calendar.SaveNote(ctx, date, notes)
}

func (r *Repository) ListNotes(ctx context.Context, from, to string) ([]*models.CalendarNote, error) {
	return r.Calendar.ListNotes(ctx, from, to)
}

// Wrapper methods for CredentialRepo
func (r *Repository) GetCredential(ctx context.Context) (*models.TwilioCredential, error) {
	return r.Credentials.Get(ctx)
}

func (r *Repository) ReplaceCredential(ctx context.Context, cred models.TwilioCredential) error {
	return r.Credentials.Replace(ctx, cred)
}

var _ DataStore = (*Repository)(nil)
