package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gabxillaa/internship-tracker/internal/domain"
)

// Live subscriptions: the client gets the full ordered result set as an SSE
// event immediately and again after every change notification, replacing its
// previous state wholesale. The stream ends when the client disconnects; on
// a read failure the error is delivered once and the subscription is not
// re-established.

func writeSSE(w io.Writer, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

func (h *Handler) SubscribeMyShifts(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.internalServerError(w, r, errors.New("response writer does not support streaming"))
		return
	}

	pubsub := h.notifier.SubscribeShifts(r.Context(), userID)
	defer pubsub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	snapshot := func() bool {
		shifts, err := h.repository.GetShiftsByUser(userID)
		if err != nil {
			h.logInternalServerError(r, err)
			_ = writeSSE(w, "error", Response{Success: false, Message: "Failed to load shifts.", Data: nil})
			flusher.Flush()
			return false
		}

		if err := writeSSE(w, "snapshot", Response{Success: true, Message: "Fetched shifts.", Data: h.buildShiftsPayload(shifts)}); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !snapshot() {
		return
	}

	notifications := pubsub.Channel()
	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-notifications:
			if !ok {
				return
			}
			if !snapshot() {
				return
			}
		}
	}
}

func (h *Handler) SubscribeDTREntries(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftCtx).(*domain.Shift)

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.internalServerError(w, r, errors.New("response writer does not support streaming"))
		return
	}

	pubsub := h.notifier.SubscribeDTR(r.Context(), shift.ID)
	defer pubsub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	shiftID := shift.ID
	snapshot := func() bool {
		// re-read the shift: clocking out or editing it changes the
		// completion state and prefill this payload derives
		shift, err := h.repository.GetShiftByID(shiftID)
		if err != nil {
			h.logInternalServerError(r, err)
			_ = writeSSE(w, "error", Response{Success: false, Message: "Failed to load DTR entries.", Data: nil})
			flusher.Flush()
			return false
		}

		entries, err := h.repository.GetDTREntriesByShift(shiftID)
		if err != nil {
			h.logInternalServerError(r, err)
			_ = writeSSE(w, "error", Response{Success: false, Message: "Failed to load DTR entries.", Data: nil})
			flusher.Flush()
			return false
		}

		if err := writeSSE(w, "snapshot", Response{Success: true, Message: "Fetched DTR entries.", Data: h.buildDTRPayload(shift, entries)}); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !snapshot() {
		return
	}

	notifications := pubsub.Channel()
	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-notifications:
			if !ok {
				return
			}
			if !snapshot() {
				return
			}
		}
	}
}
