package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// CalendarRepo owns the date -> note table
type CalendarRepo struct {
	db *sqlx.DB
}

// NewCalendarRepo wraps an open calendar database
func NewCalendarRepo(db *sqlx.DB) *CalendarRepo {
	return &CalendarRepo{db: db}
}

// GetNote returns the note stored for date, or "" when there is none
func (r *CalendarRepo) GetNote(ctx context.Context, date string) (string, error) {
	var notes string
	err := r.db.GetContext(ctx, &notes, `SELECT notes FROM calendar WHERE date = ?`, date)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get note for %s: %w", date, err)
	}
	return notes, nil
}

// SaveNote inserts or replaces the note for date
func (r *CalendarRepo) SaveNote(ctx context.Context, date, notes string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar (date, notes) VALUES (?, ?)
		ON CONFLICT(date) DO UPDATE SET notes = excluded.notes`,
		date, notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save note for %s: %w", date, err)
	}
	return nil
}

// ListNotes returns notes with from <= date <= to, ordered by date
func (r *CalendarRepo) ListNotes(ctx context.Context, from, to string) ([]*models.CalendarNote, error) {
	notes := []*models.CalendarNote{}
	err := r.db.SelectContext(ctx, &notes,
		`SELECT date, notes FROM calendar WHERE date >= ? AND date <= ? ORDER BY date`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes between %s and %s: %w", from, to, err)
	}
	return notes, nil
}
