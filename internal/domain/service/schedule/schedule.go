package schedule

import (
	"time"

	"AccelMailBot/internal/domain/errorz"
)

const dateLayout = "2006-01-02"

// Mailings go out on Tuesdays only.
const mailDay = time.Weekday(2)

// ValidateStartDate checks a requested start date against the mailing
// calendar: parseable, not in the past, a mailing day, and not blacked out.
// Failures are user-correctable validation errors.
func ValidateStartDate(raw string, blackoutDates []string, now time.Time) error {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return errorz.Validation("Please enter the date as YYYY-MM-DD, e.g. 2026-09-08.")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return errorz.Validation("The start date can't be in the past.")
	}

	if date.Weekday() != mailDay {
		return errorz.Validation("Mailings go out on Tuesdays. Please pick a Tuesday.")
	}

	for _, blocked := range blackoutDates {
		if raw == blocked {
			return errorz.Validation("That date is unavailable for mailing. Please pick another Tuesday.")
		}
	}
	return nil
}

// NextMailDate suggests the closest valid start date on or after now.
func NextMailDate(blackoutDates []string, now time.Time) string {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		raw := date.Format(dateLayout)
		if date.Weekday() == mailDay && !contains(blackoutDates, raw) {
			return raw
		}
		date = date.AddDate(0, 0, 1)
	}
	return ""
}

func contains(dates []string, raw string) bool {
	for _, d := range dates {
		if d == raw {
			return true
		}
	}
	return false
}
