// Package timeclock implements the wall-clock time model and working-hours
// calculation used by the timesheet.
package timeclock

import (
	"fmt"
	"strconv"
	"time"
)

const (
	AM = "AM"
	PM = "PM"
)

// TimeOfDay is a 12-hour wall-clock time as it arrives from the UI: hour and
// minute are kept as strings so that an empty field means "not set".
type TimeOfDay struct {
	Hour     string `json:"hour"`
	Minute   string `json:"minute"`
	Meridiem string `json:"meridiem"`
}

// IsSet reports whether both hour and minute are present.
func (t TimeOfDay) IsSet() bool {
	return t.Hour != "" && t.Minute != ""
}

// To24Hour converts t to a zero-padded "HH:MM" 24-hour string.
// Returns "" when the time is unset or unparsable.
func (t TimeOfDay) To24Hour() string {
	if !t.IsSet() {
		return ""
	}
	hour, err := strconv.Atoi(t.Hour)
	if err != nil {
		return ""
	}
	minute, err := strconv.Atoi(t.Minute)
	if err != nil {
		return ""
	}
	if t.Meridiem == PM && hour != 12 {
		hour += 12
	}
	if t.Meridiem == AM && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Display renders t as "H:MM AM" using the stored field values verbatim.
// Returns "" when the time is unset.
func (t TimeOfDay) Display() string {
	if !t.IsSet() {
		return ""
	}
	return fmt.Sprintf("%s:%s %s", t.Hour, t.Minute, t.Meridiem)
}

// Now returns the current local wall-clock time. Hours 0 and 12 both display
// as 12; every other hour maps to its value mod 12.
func Now() TimeOfDay {
	return FromClock(time.Now())
}

// FromClock converts a time.Time to its 12-hour representation.
func FromClock(now time.Time) TimeOfDay {
	hours := now.Hour()
	meridiem := AM
	if hours >= 12 {
		meridiem = PM
	}
	hour12 := hours % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return TimeOfDay{
		Hour:     fmt.Sprintf("%02d", hour12),
		Minute:   fmt.Sprintf("%02d", now.Minute()),
		Meridiem: meridiem,
	}
}

// anchor pins a parsed "HH:MM" string onto an arbitrary common day so two
// clock times can be subtracted.
func anchor(hhmm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC), true
}

// ComputeHours returns the net worked hours between in and out after
// deducting breakMinutes. An out time at or before the in time is treated as
// the next calendar day (overnight shift), never as an error. The result is
// never negative: a break longer than the shift floors to zero. If either
// time is unset the result is zero.
func ComputeHours(in, out TimeOfDay, breakMinutes int) float64 {
	in24 := in.To24Hour()
	out24 := out.To24Hour()
	if in24 == "" || out24 == "" {
		return 0
	}

	inAt, ok := anchor(in24)
	if !ok {
		return 0
	}
	outAt, ok := anchor(out24)
	if !ok {
		return 0
	}

	if !outAt.After(inAt) {
		outAt = outAt.AddDate(0, 0, 1)
	}

	rawHours := outAt.Sub(inAt).Hours()
	breakHours := float64(breakMinutes) / 60

	worked := rawHours - breakHours
	if worked < 0 {
		return 0
	}
	return worked
}
