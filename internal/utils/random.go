package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gabxillaa/internship-tracker/internal/domain"
	"github.com/gabxillaa/internship-tracker/internal/timesheet"
	"golang.org/x/crypto/bcrypt"
)

var commonGivenNames = []string{
	"Alyssa", "Bianca", "Carlo", "Diana", "Enzo", "Faith", "Gab", "Hannah",
	"Ivan", "Jasmine", "Kristine", "Luis", "Mika", "Nico", "Patricia",
	"Rafael", "Sofia", "Thea", "Vince", "Yana",
}
var commonFamilyNames = []string{
	"Santos", "Reyes", "Cruz", "Bautista", "Garcia", "Mendoza", "Torres",
	"Flores", "Ramos", "Gonzales", "Villanueva", "Navarro", "Domingo",
	"Castillo", "Aquino", "Del Rosario", "Lim", "Tan", "Ocampo", "Rivera",
}

func GenerateRandomFullName() string {
	given := commonGivenNames[rand.Intn(len(commonGivenNames))]
	family := commonFamilyNames[rand.Intn(len(commonFamilyNames))]
	return given + " " + family
}

var digits = "0123456789"

func GenerateEmailFromFullName(fullName string, emailDomainName string) string {
	local := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        GenerateEmailFromFullName(fullName, emailDomainName),
		PasswordHash: string(passwordHash),
		FullName:     fullName,
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// GenerateRandomClosedShift produces a plausible back-dated work day:
// clock-in between 08:00 and 10:59, 8 to 10 hours on the clock.
func GenerateRandomClosedShift(userID int64, daysAgo int, loc *time.Location) *domain.Shift {
	day := time.Now().In(loc).AddDate(0, 0, -daysAgo)
	start := time.Date(day.Year(), day.Month(), day.Day(), 8+rand.Intn(3), rand.Intn(60), 0, 0, loc)
	end := start.Add(8*time.Hour + time.Duration(rand.Intn(121))*time.Minute)
	netHours := timesheet.NetHours(start, end)

	return &domain.Shift{
		UserID:    userID,
		Date:      start.Format(timesheet.DateLayout),
		StartTime: start,
		EndTime:   &end,
		NetHours:  &netHours,
	}
}

var sampleActivities = []string{
	"Stand-up and sprint board grooming",
	"Implemented feedback from yesterday's code review",
	"Paired on the reporting module",
	"Wrote unit tests for the billing flow",
	"Documentation pass on the onboarding wiki",
	"Investigated a flaky integration test",
	"Customer ticket triage",
	"Refactored the export job",
}

// GenerateRandomDTREntries fills the shift's working hours with one entry
// per hour starting at clock-in.
func GenerateRandomDTREntries(shift *domain.Shift, company string, loc *time.Location) []*domain.DTREntry {
	n := rand.Intn(4) + 2
	entries := make([]*domain.DTREntry, 0, n)

	at := shift.StartTime.In(loc)
	for i := 0; i < n; i++ {
		entries = append(entries, &domain.DTREntry{
			ShiftID:     shift.ID,
			Company:     company,
			Time:        at.Format(timesheet.TimeOfDayLayout),
			Description: sampleActivities[rand.Intn(len(sampleActivities))],
		})
		at = at.Add(time.Hour)
	}

	return entries
}
