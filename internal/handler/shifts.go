package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/domain"
	"github.com/gabxillaa/internship-tracker/internal/timesheet"
	"github.com/gabxillaa/internship-tracker/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// shiftsPayload is one full snapshot of the caller's shift collection,
// newest first, with everything the dashboard derives from it.
type shiftsPayload struct {
	Shifts      []*domain.Shift   `json:"shifts"`
	ActiveShift *domain.Shift     `json:"activeShift"`
	Summary     timesheet.Summary `json:"summary"`
}

func (h *Handler) buildShiftsPayload(shifts []*domain.Shift) shiftsPayload {
	payload := shiftsPayload{
		Shifts: shifts,
	}

	for _, shift := range shifts {
		if shift.IsActive() {
			payload.ActiveShift = shift
			break
		}
	}

	payload.Summary = timesheet.BuildSummary(
		shifts,
		h.config.Tracker.GoalHours,
		h.config.Tracker.DailyQuotaHours,
		h.deadline,
		time.Now().In(h.location),
	)

	return payload
}

// notifyShifts pushes a change notification to the user's subscribers. A
// failed publish only delays them until the next write, so it is logged
// and the request still succeeds.
func (h *Handler) notifyShifts(r *http.Request, userID int64) {
	if err := h.notifier.ShiftsChanged(r.Context(), userID); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) notifyDTR(r *http.Request, shiftID uuid.UUID) {
	if err := h.notifier.DTRChanged(r.Context(), shiftID); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) GetMyShifts(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	shifts, err := h.repository.GetShiftsByUser(userID)
	if err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Failed to load shifts.")
		return
	}

	h.successResponse(w, r, "Fetched shifts.", h.buildShiftsPayload(shifts))
}

func (h *Handler) GetMySummary(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	shifts, err := h.repository.GetShiftsByUser(userID)
	if err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Failed to load shifts.")
		return
	}

	h.successResponse(w, r, "Fetched summary.", h.buildShiftsPayload(shifts).Summary)
}

// ClockToggle clocks in when no shift is open and clocks out otherwise.
func (h *Handler) ClockToggle(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	active, err := h.repository.GetActiveShift(userID)
	switch {
	case err == nil:
		// clock out; net hours derive from the same instant stored as
		// the end time
		end := time.Now()
		netHours := timesheet.NetHours(active.StartTime, end)
		if err := h.repository.CloseShift(active, end, netHours); err != nil {
			h.logInternalServerError(r, err)
			h.errorResponse(w, r, "Clock action failed.")
			return
		}

		h.notifyShifts(r, userID)
		// the end time changes the DTR completion state and prefill
		h.notifyDTR(r, active.ID)
		h.successResponse(w, r, "Clocked out.", active)
	case errors.Is(err, sql.ErrNoRows):
		// clock in; the calendar day comes from the start instant itself
		now := time.Now()
		shift := &domain.Shift{
			UserID:    userID,
			Date:      now.In(h.location).Format(timesheet.DateLayout),
			StartTime: now,
		}

		if err := h.repository.CreateShift(shift); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.ConstraintName == "shifts_one_active_per_user" {
				// a concurrent clock-in won the race
				h.errorResponse(w, r, "You are already clocked in.")
				return
			}
			h.logInternalServerError(r, err)
			h.errorResponse(w, r, "Clock action failed.")
			return
		}

		h.notifyShifts(r, userID)
		h.successResponse(w, r, "Clocked in.", shift)
	default:
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Clock action failed.")
	}
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Date      string  `json:"date" validate:"required"`
		StartTime string  `json:"startTime" validate:"required"`
		EndTime   string  `json:"endTime"`
		NetHours  float64 `json:"netHours" validate:"gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateShiftEdit(req.Date, req.StartTime, req.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startTime, err := timesheet.CombineDateTime(req.Date, req.StartTime, h.location)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift.Date = req.Date
	shift.StartTime = startTime
	shift.EndTime = nil
	if req.EndTime != "" {
		endTime, err := timesheet.CombineDateTime(req.Date, req.EndTime, h.location)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		shift.EndTime = &endTime
	}
	netHours := req.NetHours
	shift.NetHours = &netHours

	if err := h.repository.UpdateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "shifts_one_active_per_user" {
			// clearing the end time would give the user a second open shift
			h.errorResponse(w, r, "You already have an open shift.")
			return
		}
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Update failed.")
		return
	}

	h.notifyShifts(r, shift.UserID)
	// the edit can move the end time, which changes the DTR completion
	// state and prefill
	h.notifyDTR(r, shift.ID)
	h.successResponse(w, r, "Shift updated.", shift)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	if err := h.repository.DeleteShift(shift.ID); err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Delete failed.")
		return
	}

	// DTR entries are removed by the cascade, so their subscribers need a
	// notification too
	h.notifyShifts(r, shift.UserID)
	h.notifyDTR(r, shift.ID)
	h.successResponse(w, r, "Shift deleted.", nil)
}
