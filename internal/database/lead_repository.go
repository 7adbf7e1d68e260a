package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/leadbook/internal/models"
)

const leadColumns = `id, first_name, last_name, address_line1, address_line2, city, state,
	zipcode, phone, email, notes, referred_by, job_type, lead_status`

// LeadColumns is the set of lead columns that may be changed after creation.
// It is the allow-list for UpdateField; id is deliberately absent.
var LeadColumns = map[string]bool{
	"first_name":    true,
	"last_name":     true,
	"address_line1": true,
	"address_line2": true,
	"city":          true,
	"state":         true,
	"zipcode":       true,
	"phone":         true,
	"email":         true,
	"notes":         true,
	"referred_by":   true,
	"job_type":      true,
	"lead_status":   true,
}

// LeadRepo owns the leads table
type LeadRepo struct {
	db *sqlx.DB
}

// NewLeadRepo wraps an open leads database
func NewLeadRepo(db *sqlx.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// Create inserts lead and returns it with its assigned id.
// The caller decides the status; the service forces In System.
func (r *LeadRepo) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO leads (
			first_name, last_name, address_line1, address_line2, city, state,
			zipcode, phone, email, notes, referred_by, job_type, lead_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lead.FirstName, lead.LastName, lead.AddressLine1, lead.AddressLine2,
		lead.City, lead.State, lead.Zipcode, lead.Phone, lead.Email,
		lead.Notes, lead.ReferredBy, string(lead.JobType), string(lead.LeadStatus),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new lead id: %w", err)
	}

	created := *lead
	created.ID = int(id)
	return &created, nil
}

// GetAll returns every lead ordered by id
func (r *LeadRepo) GetAll(ctx context.Context) ([]*models.Lead, error) {
	leads := []*models.Lead{}
	if err := r.db.SelectContext(ctx, &leads, `SELECT `+leadColumns+` FROM leads ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// GetByID returns one lead or models.ErrNotFound
func (r *LeadRepo) GetByID(ctx context.Context, id int) (*models.Lead, error) {
	lead := &models.Lead{}
	err := r.db.GetContext(ctx, lead, `SELECT `+leadColumns+` FROM leads WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead %d: %w", id, err)
	}
	return lead, nil
}

// UpdateField sets a single column on one lead.
// column must be a key of LeadColumns; an unknown id yields models.ErrNotFound.
func (r *LeadRepo) UpdateField(ctx context.Context, id int, column, value string) error {
	if !LeadColumns[column] {
		return fmt.Errorf("column %q is not updatable", column)
	}

	// column is interpolated only after the allow-list check above
	result, err := r.db.ExecContext(ctx, fmt.Sprintf(`UPDATE leads SET %s = ? WHERE id = ?`, column), value, id)
	if err != nil {
		return fmt.Errorf("failed to update %s on lead %d: %w", column, id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a lead. Deleting a missing id is not an error.
func (r *LeadRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete lead %d: %w", id, err)
	}
	return nil
}

// Count returns the number of stored leads
func (r *LeadRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM leads`); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return n, nil
}
