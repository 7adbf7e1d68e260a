package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/leadbook/internal/models"
)

// CredentialRepo owns the single-row Twilio credentials table
type CredentialRepo struct {
	db *sqlx.DB
}

// NewCredentialRepo wraps an open credentials database
func NewCredentialRepo(db *sqlx.DB) *CredentialRepo {
	return &CredentialRepo{db: db}
}

// Get returns the stored pair or models.ErrNotFound
func (r *CredentialRepo) Get(ctx context.Context) (*models.TwilioCredential, error) {
	cred := &models.TwilioCredential{}
	err := r.db.GetContext(ctx, cred, `SELECT sid, auth_token FROM twilio_credentials LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load twilio credentials: %w", err)
	}
	return cred, nil
}

// Replace clears every stored row and inserts cred, atomically
func (r *CredentialRepo) Replace(ctx context.Context, cred models.TwilioCredential) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM twilio_credentials`); err != nil {
			return fmt.Errorf("failed to clear twilio credentials: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO twilio_credentials (sid, auth_token) VALUES (?, ?)`,
			cred.SID, cred.AuthToken,
		); err != nil {
			return fmt.Errorf("failed to insert twilio credentials: %w", err)
		}
		return nil
	})
}
