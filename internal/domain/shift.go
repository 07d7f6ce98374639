package domain

import (
	"time"

	"github.com/google/uuid"
)

// Shift is one clock-in-to-clock-out work session. EndTime and NetHours stay
// nil while the intern is still on the clock; at most one such shift may
// exist per user.
type Shift struct {
	ID        uuid.UUID  `json:"id"`
	UserID    int64      `json:"userId"`
	Date      string     `json:"date"` // yyyy-MM-dd, the calendar day the shift belongs to
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	NetHours  *float64   `json:"netHours"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsActive reports whether the shift has been clocked in but not out.
func (s *Shift) IsActive() bool {
	return s.EndTime == nil
}

// DTREntry is one hourly activity note in a shift's Daily Time Report.
// Entries are ordered by Time (HH:mm) ascending within their shift.
type DTREntry struct {
	ID          uuid.UUID `json:"id"`
	ShiftID     uuid.UUID `json:"shiftId"`
	Company     string    `json:"company"`
	Time        string    `json:"time"` // HH:mm
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
