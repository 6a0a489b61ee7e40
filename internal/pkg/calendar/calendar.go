// Package calendar provides the month-grid arithmetic and the canonical
// date-key construction shared by the timesheet and its callers.
package calendar

import (
	"fmt"
	"time"
)

// DaysInMonth returns the cell sequence for rendering a 7-column month grid:
// one zero for each weekday preceding the 1st (Sunday = column 0), then the
// day numbers 1..lastDay in order. A zero cell is a leading blank.
func DaysInMonth(year int, month time.Month) []int {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]int, 0, int(firstDay.Weekday())+lastDay)
	for i := 0; i < int(firstDay.Weekday()); i++ {
		days = append(days, 0)
	}
	for day := 1; day <= lastDay; day++ {
		days = append(days, day)
	}
	return days
}

// DateKey builds the canonical "YYYY-MM-DD" key for a calendar date by plain
// zero-padded formatting. No timezone conversion is ever involved, so the key
// for a given civil date is the same everywhere. All record lookups must use
// this construction.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// MonthKey builds the "YYYY-MM" prefix shared by all date keys of a month.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseDateKey validates a "YYYY-MM-DD" key and reports whether it denotes a
// real calendar date in canonical zero-padded form.
func ParseDateKey(key string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return time.Time{}, false
	}
	// Reject non-canonical spellings such as "2024-2-09".
	if key != DateKey(t.Year(), t.Month(), t.Day()) {
		return time.Time{}, false
	}
	return t, true
}
