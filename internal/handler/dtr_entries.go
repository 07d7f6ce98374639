package handler

import (
	"net/http"
	"strings"

	"github.com/gabxillaa/internship-tracker/internal/domain"
	"github.com/gabxillaa/internship-tracker/internal/timesheet"
	"github.com/gabxillaa/internship-tracker/internal/utils"
)

// dtrPayload is one full snapshot of a shift's Daily Time Report, ordered
// by time-of-day ascending, plus the form prefill derived from it.
type dtrPayload struct {
	Entries     []*domain.DTREntry `json:"entries"`
	DefaultTime string             `json:"defaultTime"`
	Complete    bool               `json:"complete"`
}

func (h *Handler) buildDTRPayload(shift *domain.Shift, entries []*domain.DTREntry) dtrPayload {
	return dtrPayload{
		Entries:     entries,
		DefaultTime: timesheet.DefaultEntryTime(entries, shift, h.location, h.config.Tracker.FallbackEntryTime),
		Complete:    timesheet.IsComplete(shift, entries, h.location),
	}
}

func (h *Handler) GetDTREntries(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	entries, err := h.repository.GetDTREntriesByShift(shift.ID)
	if err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Failed to load DTR entries.")
		return
	}

	h.successResponse(w, r, "Fetched DTR entries.", h.buildDTRPayload(shift, entries))
}

func (h *Handler) CreateDTREntry(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	var req struct {
		Company     string `json:"company"`
		Time        string `json:"time"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	entries, err := h.repository.GetDTREntriesByShift(shift.ID)
	if err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Failed to load DTR entries.")
		return
	}

	// only new entries at the clock-out time are refused, edits never are
	if timesheet.RejectsNewEntry(shift, entries, req.Time, h.location) {
		h.errorResponse(w, r, "DTR is complete for the day.")
		return
	}

	if req.Time == "" {
		h.errorResponse(w, r, "Please choose a time.")
		return
	}
	if err := utils.ValidateEntryTime(req.Time); err != nil {
		h.errorResponse(w, r, "Please choose a time.")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		h.errorResponse(w, r, "Please add a description for the hour.")
		return
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = h.config.Tracker.DefaultCompany
	}

	entry := &domain.DTREntry{
		ShiftID:     shift.ID,
		Company:     company,
		Time:        req.Time,
		Description: strings.TrimSpace(req.Description),
	}

	if err := h.repository.CreateDTREntry(entry); err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Failed to save DTR entry.")
		return
	}

	h.notifyDTR(r, shift.ID)
	h.successResponse(w, r, "DTR entry added.", entry)
}

func (h *Handler) UpdateDTREntry(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)
	entry := r.Context().Value(DTREntryCtx).(*domain.DTREntry)

	var req struct {
		Company     string `json:"company"`
		Time        string `json:"time"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Time == "" {
		h.errorResponse(w, r, "Please choose a time.")
		return
	}
	if err := utils.ValidateEntryTime(req.Time); err != nil {
		h.errorResponse(w, r, "Please choose a time.")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		h.errorResponse(w, r, "Please add a description for the hour.")
		return
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = h.config.Tracker.DefaultCompany
	}

	entry.Company = company
	entry.Time = req.Time
	entry.Description = strings.TrimSpace(req.Description)

	if err := h.repository.UpdateDTREntry(entry); err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Failed to save DTR entry.")
		return
	}

	h.notifyDTR(r, shift.ID)
	h.successResponse(w, r, "DTR entry updated.", entry)
}

func (h *Handler) DeleteDTREntry(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)
	entry := r.Context().Value(DTREntryCtx).(*domain.DTREntry)

	if err := h.repository.DeleteDTREntry(entry.ID); err != nil {
		h.logInternalServerError(r, err)
		h.errorResponse(w, r, "Failed to delete DTR entry.")
		return
	}

	h.notifyDTR(r, shift.ID)
	h.successResponse(w, r, "DTR entry deleted.", nil)
}
