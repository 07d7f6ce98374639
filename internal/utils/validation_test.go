package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/timesheet"
	"github.com/gabxillaa/internship-tracker/internal/utils"
)

func TestValidateShiftEdit(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid closed", "2026-03-02", "09:00", "17:30", false},
		{"valid open", "2026-03-02", "09:00", "", false},
		{"bad date", "03/02/2026", "09:00", "17:30", true},
		{"bad start", "2026-03-02", "9am", "17:30", true},
		{"bad end", "2026-03-02", "09:00", "late", true},
		{"end before start allowed", "2026-03-02", "17:30", "09:00", false},
	}
	for _, tt := range tests {
		err := utils.ValidateShiftEdit(tt.date, tt.start, tt.end)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: ValidateShiftEdit = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateEntryTime(t *testing.T) {
	if err := utils.ValidateEntryTime("09:30"); err != nil {
		t.Errorf("ValidateEntryTime(09:30) = %v", err)
	}
	if err := utils.ValidateEntryTime("25:00"); err == nil {
		t.Error("ValidateEntryTime(25:00) should fail")
	}
}

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := utils.GenerateRandomOTP()
		if len(otp) != 6 {
			t.Fatalf("OTP length = %d, want 6", len(otp))
		}
		if strings.Trim(otp, "0123456789") != "" {
			t.Fatalf("OTP %q contains non-digits", otp)
		}
	}
}

func TestGenerateRandomClosedShift(t *testing.T) {
	loc := time.FixedZone("PHT", 8*60*60)
	for daysAgo := 1; daysAgo <= 10; daysAgo++ {
		shift := utils.GenerateRandomClosedShift(7, daysAgo, loc)
		if shift.EndTime == nil || shift.NetHours == nil {
			t.Fatal("generated shift should be closed")
		}

		// date and net hours must derive from the shift's own instants
		if got := timesheet.NetHours(shift.StartTime, *shift.EndTime); got != *shift.NetHours {
			t.Errorf("net hours = %v, want %v", *shift.NetHours, got)
		}
		if want := shift.StartTime.In(loc).Format(timesheet.DateLayout); shift.Date != want {
			t.Errorf("date = %q, want %q", shift.Date, want)
		}
	}
}

func TestGenerateEmailFromFullName(t *testing.T) {
	email := utils.GenerateEmailFromFullName("Gab Santos", "inspireholdings.ph")
	if !strings.HasPrefix(email, "gab.santos") {
		t.Errorf("email local part = %q, want gab.santos prefix", email)
	}
	if !strings.HasSuffix(email, "@inspireholdings.ph") {
		t.Errorf("email domain = %q", email)
	}
}
