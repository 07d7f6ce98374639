// Package timesheet holds the pure calculations behind the dashboard:
// net rendered hours, goal progress and the weekend-skipping finish-date
// projection, plus the DTR ordering/locking rules.
package timesheet

import (
	"math"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/domain"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
	FinishLayout    = "Jan 02, 2006"

	FinishedLabel = "Finished! 🎉"

	// LunchDeductionHours is subtracted from every closed shift's elapsed
	// time before it counts toward the goal.
	LunchDeductionHours = 1
)

// NetHours returns the billable hours between start and end: elapsed
// wall-clock hours rounded to 2 decimals, minus the lunch deduction,
// floored at zero.
func NetHours(start, end time.Time) float64 {
	raw := end.Sub(start).Hours()
	rounded := math.Round(raw*100) / 100
	net := rounded - LunchDeductionHours
	if net < 0 {
		return 0
	}
	return net
}

// TotalRendered sums the net hours of all closed shifts.
func TotalRendered(shifts []*domain.Shift) float64 {
	total := 0.0
	for _, s := range shifts {
		if s.NetHours != nil {
			total += *s.NetHours
		}
	}
	return total
}

// HoursLeft returns how many hours remain until the goal, never negative.
func HoursLeft(goal, total float64) float64 {
	left := goal - total
	if left < 0 {
		return 0
	}
	return left
}

// DaysNeeded is the number of full working days required to render
// hoursLeft at the given daily quota.
func DaysNeeded(hoursLeft, quota float64) int {
	return int(math.Ceil(hoursLeft / quota))
}

// EstimateFinish projects the calendar date on which the remaining hours
// will be rendered, counting only Monday through Friday starting from the
// day after today. The second return value is true when nothing is left
// to render, in which case the returned date is the zero time.
func EstimateFinish(hoursLeft, quota float64, today time.Time) (time.Time, bool) {
	if hoursLeft <= 0 {
		return time.Time{}, true
	}

	daysNeeded := DaysNeeded(hoursLeft, quota)
	date := today
	for daysNeeded > 0 {
		date = date.AddDate(0, 0, 1)
		if !isWeekend(date) {
			daysNeeded--
		}
	}
	return date, false
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Summary carries the derived dashboard numbers; nothing here is persisted.
type Summary struct {
	TotalRendered   float64 `json:"totalRendered"`
	GoalHours       float64 `json:"goalHours"`
	HoursLeft       float64 `json:"hoursLeft"`
	EstimatedFinish string  `json:"estimatedFinish"`
	Deadline        string  `json:"deadline"`
	OverDeadline    bool    `json:"overDeadline"`
}

// BuildSummary recomputes the dashboard numbers from the current shift set.
func BuildSummary(shifts []*domain.Shift, goal, quota float64, deadline, today time.Time) Summary {
	total := TotalRendered(shifts)
	left := HoursLeft(goal, total)

	summary := Summary{
		TotalRendered:   total,
		GoalHours:       goal,
		HoursLeft:       left,
		EstimatedFinish: FinishedLabel,
		Deadline:        deadline.Format(DateLayout),
	}

	projected, finished := EstimateFinish(left, quota, today)
	if !finished {
		summary.EstimatedFinish = projected.Format(FinishLayout)
		summary.OverDeadline = startOfDay(projected).After(startOfDay(deadline))
	}

	return summary
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CombineDateTime builds an instant from a yyyy-MM-dd date and an HH:mm
// time-of-day, interpreted in the given zone.
func CombineDateTime(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeOfDayLayout, date+" "+timeOfDay, loc)
}

// EndTimeOfDay returns the HH:mm at which the shift was clocked out, or
// false while it is still open.
func EndTimeOfDay(shift *domain.Shift, loc *time.Location) (string, bool) {
	if shift.EndTime == nil {
		return "", false
	}
	return shift.EndTime.In(loc).Format(TimeOfDayLayout), true
}

// HasEntryAt reports whether some entry already occupies the given
// time-of-day.
func HasEntryAt(entries []*domain.DTREntry, timeOfDay string) bool {
	for _, e := range entries {
		if e.Time == timeOfDay {
			return true
		}
	}
	return false
}

// IsComplete reports whether the shift's DTR is locked for new entries:
// the shift is clocked out and an entry already sits at its end
// time-of-day. Existing entries stay editable regardless.
func IsComplete(shift *domain.Shift, entries []*domain.DTREntry, loc *time.Location) bool {
	end, ok := EndTimeOfDay(shift, loc)
	if !ok {
		return false
	}
	return HasEntryAt(entries, end)
}

// RejectsNewEntry reports whether a new entry at newTime must be refused:
// the shift is clocked out, newTime is its end time-of-day and an entry
// already holds it. Only creation is ever refused; edits are not, and a
// new entry at the end time is fine while nothing occupies it yet.
func RejectsNewEntry(shift *domain.Shift, entries []*domain.DTREntry, newTime string, loc *time.Location) bool {
	end, ok := EndTimeOfDay(shift, loc)
	if !ok {
		return false
	}
	return newTime == end && HasEntryAt(entries, end)
}

// DefaultEntryTime picks the prefill time for the next entry: the last
// received entry's time, else the shift's start time-of-day, else the
// configured fallback.
func DefaultEntryTime(entries []*domain.DTREntry, shift *domain.Shift, loc *time.Location, fallback string) string {
	if len(entries) > 0 {
		return entries[len(entries)-1].Time
	}
	if shift != nil {
		return shift.StartTime.In(loc).Format(TimeOfDayLayout)
	}
	return fallback
}
