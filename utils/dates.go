package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TransformBookingDate reorders DD-MM-YYYY input into YYYY-MM-DD storage
// form. It is intentionally not calendar-aware: "31-02-2024" is accepted and
// stored as "2024-02-31", matching the existing data set.
func TransformBookingDate(input string) (string, error) {
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 3 {
		return "", errors.New("booking date must be DD-MM-YYYY")
	}
	day, month, year := parts[0], parts[1], parts[2]
	return fmt.Sprintf("%s-%s-%s", year, month, day), nil
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// Tomorrow returns the next day's date in storage form (YYYY-MM-DD).
func Tomorrow(now time.Time) string {
	return BeginningOfDay(now).AddDate(0, 0, 1).Format("2006-01-02")
}
