package timesheet_test

import (
	"testing"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/domain"
	"github.com/gabxillaa/internship-tracker/internal/timesheet"
)

var manila = time.FixedZone("PHT", 8*60*60)

func TestNetHours(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, manila)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"full day", day(9, 0), day(17, 30), 7.5},
		{"exactly one hour", day(9, 0), day(10, 0), 0},
		{"shorter than deduction", day(9, 0), day(9, 30), 0},
		{"rounds before deducting", day(9, 0), day(17, 29).Add(17 * time.Second), 7.49},
		{"zero length", day(9, 0), day(9, 0), 0},
	}
	for _, tt := range tests {
		got := timesheet.NetHours(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("%s: NetHours = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTotalRenderedSkipsOpenShifts(t *testing.T) {
	closed := 7.5
	shifts := []*domain.Shift{
		{NetHours: &closed},
		{NetHours: nil}, // still on the clock
		{NetHours: &closed},
	}
	if got := timesheet.TotalRendered(shifts); got != 15 {
		t.Errorf("TotalRendered = %v, want 15", got)
	}
}

func TestHoursLeft(t *testing.T) {
	if got := timesheet.HoursLeft(486, 100); got != 386 {
		t.Errorf("HoursLeft = %v, want 386", got)
	}
	if got := timesheet.HoursLeft(486, 500); got != 0 {
		t.Errorf("HoursLeft past goal = %v, want 0", got)
	}
}

func TestDaysNeeded(t *testing.T) {
	tests := []struct {
		hoursLeft float64
		want      int
	}{
		{16, 2},
		{17, 3},
		{1, 1},
		{8, 1},
		{486, 61},
	}
	for _, tt := range tests {
		if got := timesheet.DaysNeeded(tt.hoursLeft, 8); got != tt.want {
			t.Errorf("DaysNeeded(%v) = %d, want %d", tt.hoursLeft, got, tt.want)
		}
	}
}

func TestEstimateFinishSkipsWeekends(t *testing.T) {
	// 2026-02-27 is a Friday; 16 hours = 2 working days, so the weekend
	// is skipped and the projection lands on Tuesday.
	friday := time.Date(2026, 2, 27, 10, 0, 0, 0, manila)

	got, finished := timesheet.EstimateFinish(16, 8, friday)
	if finished {
		t.Fatal("EstimateFinish: unexpected finished for 16 hours left")
	}
	want := time.Date(2026, 3, 3, 10, 0, 0, 0, manila)
	if !got.Equal(want) {
		t.Errorf("EstimateFinish = %v, want %v", got, want)
	}
}

func TestEstimateFinishSingleDay(t *testing.T) {
	// Monday + 1 working day = Tuesday.
	monday := time.Date(2026, 3, 2, 9, 0, 0, 0, manila)
	got, _ := timesheet.EstimateFinish(4, 8, monday)
	want := time.Date(2026, 3, 3, 9, 0, 0, 0, manila)
	if !got.Equal(want) {
		t.Errorf("EstimateFinish = %v, want %v", got, want)
	}
}

func TestEstimateFinishDone(t *testing.T) {
	if _, finished := timesheet.EstimateFinish(0, 8, time.Now()); !finished {
		t.Error("EstimateFinish(0) should report finished")
	}
	if _, finished := timesheet.EstimateFinish(-3, 8, time.Now()); !finished {
		t.Error("EstimateFinish(<0) should report finished")
	}
}

func TestBuildSummary(t *testing.T) {
	deadline := time.Date(2026, 5, 22, 0, 0, 0, 0, manila)
	today := time.Date(2026, 3, 2, 8, 0, 0, 0, manila) // a Monday

	rendered := 478.0
	shifts := []*domain.Shift{{NetHours: &rendered}}

	s := timesheet.BuildSummary(shifts, 486, 8, deadline, today)
	if s.TotalRendered != 478 || s.HoursLeft != 8 {
		t.Fatalf("summary totals = %v / %v, want 478 / 8", s.TotalRendered, s.HoursLeft)
	}
	if s.EstimatedFinish != "Mar 03, 2026" {
		t.Errorf("EstimatedFinish = %q, want %q", s.EstimatedFinish, "Mar 03, 2026")
	}
	if s.OverDeadline {
		t.Error("OverDeadline should be false for a projection before the deadline")
	}
}

func TestBuildSummaryFinished(t *testing.T) {
	rendered := 486.0
	s := timesheet.BuildSummary([]*domain.Shift{{NetHours: &rendered}}, 486, 8, time.Now(), time.Now())
	if s.EstimatedFinish != timesheet.FinishedLabel {
		t.Errorf("EstimatedFinish = %q, want %q", s.EstimatedFinish, timesheet.FinishedLabel)
	}
	if s.OverDeadline {
		t.Error("a finished report is never over deadline")
	}
}

func TestBuildSummaryOverDeadline(t *testing.T) {
	// 486 hours from scratch is 61 working days; starting two weeks before
	// the deadline that projection is far past it.
	deadline := time.Date(2026, 5, 22, 0, 0, 0, 0, manila)
	today := time.Date(2026, 5, 8, 8, 0, 0, 0, manila)

	s := timesheet.BuildSummary(nil, 486, 8, deadline, today)
	if !s.OverDeadline {
		t.Error("OverDeadline should be true")
	}
}

func TestCombineDateTimeRoundTrip(t *testing.T) {
	got, err := timesheet.CombineDateTime("2026-03-03", "09:00", manila)
	if err != nil {
		t.Fatalf("CombineDateTime: %v", err)
	}
	if got.Format(timesheet.DateLayout) != "2026-03-03" {
		t.Errorf("date round trip = %q", got.Format(timesheet.DateLayout))
	}
	if got.Format(timesheet.TimeOfDayLayout) != "09:00" {
		t.Errorf("time round trip = %q", got.Format(timesheet.TimeOfDayLayout))
	}
	if got.Location() != manila {
		t.Errorf("location = %v, want %v", got.Location(), manila)
	}

	if _, err := timesheet.CombineDateTime("2026-03-03", "late", manila); err == nil {
		t.Error("CombineDateTime should reject a malformed time")
	}
}

func TestEndTimeOfDay(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, manila)
	open := &domain.Shift{StartTime: start}
	if _, ok := timesheet.EndTimeOfDay(open, manila); ok {
		t.Error("open shift should have no end time-of-day")
	}

	end := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC) // stored in UTC
	closed := &domain.Shift{StartTime: start, EndTime: &end}
	got, ok := timesheet.EndTimeOfDay(closed, manila)
	if !ok || got != "01:30" {
		t.Errorf("EndTimeOfDay = %q, %v; want local 01:30", got, ok)
	}
}

func TestIsComplete(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, manila)
	end := time.Date(2026, 3, 2, 17, 30, 0, 0, manila)
	closed := &domain.Shift{StartTime: start, EndTime: &end}

	entries := []*domain.DTREntry{{Time: "09:00"}, {Time: "16:00"}}
	if timesheet.IsComplete(closed, entries, manila) {
		t.Error("no entry at the end time yet, DTR should not be complete")
	}

	entries = append(entries, &domain.DTREntry{Time: "17:30"})
	if !timesheet.IsComplete(closed, entries, manila) {
		t.Error("entry at the end time should complete the DTR")
	}

	open := &domain.Shift{StartTime: start}
	if timesheet.IsComplete(open, entries, manila) {
		t.Error("an open shift is never complete")
	}
}

func TestRejectsNewEntry(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, manila)
	end := time.Date(2026, 3, 2, 17, 30, 0, 0, manila)
	open := &domain.Shift{StartTime: start}
	closed := &domain.Shift{StartTime: start, EndTime: &end}

	occupied := []*domain.DTREntry{{Time: "09:00"}, {Time: "17:30"}}
	unoccupied := []*domain.DTREntry{{Time: "09:00"}}

	tests := []struct {
		name    string
		shift   *domain.Shift
		entries []*domain.DTREntry
		newTime string
		want    bool
	}{
		{"occupied end time", closed, occupied, "17:30", true},
		{"unoccupied end time", closed, unoccupied, "17:30", false},
		{"other time while end is occupied", closed, occupied, "12:00", false},
		{"same entries before clock-out", open, occupied, "17:30", false},
	}
	for _, tt := range tests {
		if got := timesheet.RejectsNewEntry(tt.shift, tt.entries, tt.newTime, manila); got != tt.want {
			t.Errorf("%s: RejectsNewEntry = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDefaultEntryTime(t *testing.T) {
	start := time.Date(2026, 3, 2, 8, 45, 0, 0, manila)
	shift := &domain.Shift{StartTime: start}

	entries := []*domain.DTREntry{{Time: "09:00"}, {Time: "10:00"}}
	if got := timesheet.DefaultEntryTime(entries, shift, manila, "09:30"); got != "10:00" {
		t.Errorf("with entries: got %q, want last entry time", got)
	}
	if got := timesheet.DefaultEntryTime(nil, shift, manila, "09:30"); got != "08:45" {
		t.Errorf("without entries: got %q, want shift start", got)
	}
	if got := timesheet.DefaultEntryTime(nil, nil, manila, "09:30"); got != "09:30" {
		t.Errorf("without shift: got %q, want fallback", got)
	}
}
