package repository

import (
	"context"
	"time"
)

// schemaStatements brings an empty database up to the current schema.
// Statements are idempotent so they can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		version INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS shifts (
		id UUID PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ,
		net_hours DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	// at most one open shift per user
	`CREATE UNIQUE INDEX IF NOT EXISTS shifts_one_active_per_user
		ON shifts (user_id) WHERE end_time IS NULL`,
	`CREATE INDEX IF NOT EXISTS shifts_user_start_idx
		ON shifts (user_id, start_time DESC)`,
	`CREATE TABLE IF NOT EXISTS dtr_entries (
		id UUID PRIMARY KEY,
		shift_id UUID NOT NULL REFERENCES shifts (id) ON DELETE CASCADE,
		company TEXT NOT NULL,
		time TEXT NOT NULL,
		description TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS dtr_entries_shift_time_idx
		ON dtr_entries (shift_id, time)`,
}

func (r *Repository) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := r.dbpool.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
