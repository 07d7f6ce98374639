package utils

import (
	"fmt"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/timesheet"
)

// ValidateShiftEdit checks the raw strings of a shift edit before they are
// combined into instants. The end time may be empty (the shift is reopened);
// no ordering between start and end is enforced, matching the edit form.
func ValidateShiftEdit(date, startTime, endTime string) error {
	if _, err := time.Parse(timesheet.DateLayout, date); err != nil {
		return fmt.Errorf("date must be in yyyy-MM-dd format")
	}
	if _, err := time.Parse(timesheet.TimeOfDayLayout, startTime); err != nil {
		return fmt.Errorf("start time must be in HH:mm format")
	}
	if endTime != "" {
		if _, err := time.Parse(timesheet.TimeOfDayLayout, endTime); err != nil {
			return fmt.Errorf("end time must be in HH:mm format")
		}
	}
	return nil
}

// ValidateEntryTime rejects a malformed DTR time-of-day; an empty value is
// handled separately by the caller with its own message.
func ValidateEntryTime(timeOfDay string) error {
	if _, err := time.Parse(timesheet.TimeOfDayLayout, timeOfDay); err != nil {
		return fmt.Errorf("time must be in HH:mm format")
	}
	return nil
}
