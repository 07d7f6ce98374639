package repository

import (
	"context"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetDTREntriesByShift(shiftID uuid.UUID) ([]*domain.DTREntry, error) {
	query := `
		SELECT id, company, time, description, created_at, updated_at
		FROM dtr_entries
		WHERE shift_id = $1
		ORDER BY time ASC, created_at ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.DTREntry, 0)
	for rows.Next() {
		entry := &domain.DTREntry{
			ShiftID: shiftID,
		}

		dst := []any{&entry.ID, &entry.Company, &entry.Time, &entry.Description, &entry.CreatedAt, &entry.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) GetDTREntryByID(id uuid.UUID) (*domain.DTREntry, error) {
	query := `
		SELECT shift_id, company, time, description, created_at, updated_at
		FROM dtr_entries WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	entry := &domain.DTREntry{
		ID: id,
	}

	dst := []any{&entry.ShiftID, &entry.Company, &entry.Time, &entry.Description, &entry.CreatedAt, &entry.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return entry, nil
}

// CreateDTREntry inserts a new entry; both timestamps come from the
// database clock.
func (r *Repository) CreateDTREntry(entry *domain.DTREntry) error {
	query := `
		INSERT INTO dtr_entries (id, shift_id, company, time, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	entry.ID = uuid.New()

	args := []any{entry.ID, entry.ShiftID, entry.Company, entry.Time, entry.Description}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return err
	}

	return nil
}

// UpdateDTREntry rewrites the editable fields and bumps updated_at; the
// creation timestamp is left alone.
func (r *Repository) UpdateDTREntry(entry *domain.DTREntry) error {
	query := `
		UPDATE dtr_entries
		SET company = $1, time = $2, description = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{entry.Company, entry.Time, entry.Description, entry.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteDTREntry(id uuid.UUID) error {
	query := `
		DELETE FROM dtr_entries WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
