package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetShiftsByUser(userID int64) ([]*domain.Shift, error) {
	query := `
		SELECT id, date, start_time, end_time, net_hours, created_at
		FROM shifts
		WHERE user_id = $1
		ORDER BY start_time DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		shift := &domain.Shift{
			UserID: userID,
		}

		var endTime sql.NullTime
		var netHours sql.NullFloat64

		dst := []any{&shift.ID, &shift.Date, &shift.StartTime, &endTime, &netHours, &shift.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if endTime.Valid {
			shift.EndTime = &endTime.Time
		}
		if netHours.Valid {
			shift.NetHours = &netHours.Float64
		}

		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShiftByID(id uuid.UUID) (*domain.Shift, error) {
	query := `
		SELECT user_id, date, start_time, end_time, net_hours, created_at
		FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{
		ID: id,
	}

	var endTime sql.NullTime
	var netHours sql.NullFloat64

	dst := []any{&shift.UserID, &shift.Date, &shift.StartTime, &endTime, &netHours, &shift.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if endTime.Valid {
		shift.EndTime = &endTime.Time
	}
	if netHours.Valid {
		shift.NetHours = &netHours.Float64
	}

	return shift, nil
}

// GetActiveShift returns the caller's open shift, or sql.ErrNoRows when the
// user is not on the clock.
func (r *Repository) GetActiveShift(userID int64) (*domain.Shift, error) {
	query := `
		SELECT id, date, start_time, created_at
		FROM shifts
		WHERE user_id = $1 AND end_time IS NULL
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{
		UserID: userID,
	}

	dst := []any{&shift.ID, &shift.Date, &shift.StartTime, &shift.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return shift, nil
}

// CreateShift clocks the user in. The caller fills UserID, Date and
// StartTime from one instant so the calendar day always matches the start
// of the shift.
func (r *Repository) CreateShift(shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (id, user_id, date, start_time)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift.ID = uuid.New()

	args := []any{shift.ID, shift.UserID, shift.Date, shift.StartTime}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.CreatedAt); err != nil {
		return err
	}

	return nil
}

// CloseShift clocks the shift out with the given end instant, the same one
// the caller derived net hours from. The WHERE clause keeps a raced second
// clock-out from overwriting the first one's end instant.
func (r *Repository) CloseShift(shift *domain.Shift, endTime time.Time, netHours float64) error {
	query := `
		UPDATE shifts
		SET end_time = $1, net_hours = $2
		WHERE id = $3 AND end_time IS NULL
		RETURNING end_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var stored time.Time
	if err := r.dbpool.QueryRowContext(ctx, query, endTime, netHours, shift.ID).Scan(&stored); err != nil {
		return err
	}

	shift.EndTime = &stored
	shift.NetHours = &netHours

	return nil
}

// UpdateShift writes a user edit: date, start/end instants and net hours.
// A nil EndTime clears the stored end instant (the shift becomes open
// again); concurrent edits are last-write-wins.
func (r *Repository) UpdateShift(shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET date = $1, start_time = $2, end_time = $3, net_hours = $4
		WHERE id = $5
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var endTime sql.NullTime
	if shift.EndTime != nil {
		endTime = sql.NullTime{Time: *shift.EndTime, Valid: true}
	}
	var netHours sql.NullFloat64
	if shift.NetHours != nil {
		netHours = sql.NullFloat64{Float64: *shift.NetHours, Valid: true}
	}

	args := []any{shift.Date, shift.StartTime, endTime, netHours, shift.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.CreatedAt); err != nil {
		return err
	}

	return nil
}

// DeleteShift removes the shift; its DTR entries go with it through the
// foreign key cascade.
func (r *Repository) DeleteShift(id uuid.UUID) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
