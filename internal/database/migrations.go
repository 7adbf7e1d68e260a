package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// MigrateLeads creates the leads table
func MigrateLeads(ctx context.Context, db *sqlx.DB) error {
	// AUTOINCREMENT keeps ids from ever being reused after a delete
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS leads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			address_line1 TEXT NOT NULL DEFAULT '',
			address_line2 TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL DEFAULT '',
			zipcode TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			referred_by TEXT NOT NULL DEFAULT '',
			job_type TEXT NOT NULL DEFAULT 'Unknown',
			lead_status TEXT NOT NULL DEFAULT 'In System'
		)
	`)
	return err
}

// MigrateCalendar creates the calendar notes table
func MigrateCalendar(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS calendar (
			date TEXT PRIMARY KEY,
			notes TEXT NOT NULL DEFAULT ''
		)
	`)
	return err
}

// MigrateCredentials creates the Twilio credentials table
func MigrateCredentials(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS twilio_credentials (
			sid TEXT NOT NULL,
			auth_token TEXT NOT NULL
		)
	`)
	return err
}

// MigrateAll creates every table in one database. Used when all stores share a file.
func MigrateAll(ctx context.Context, db *sqlx.DB) error {
	for _, migrate := range []Migration{MigrateLeads, MigrateCalendar, MigrateCredentials} {
		if err := migrate(ctx, db); err != nil {
			return err
		}
	}
	return nil
}
