package timesheet

import (
	"strconv"

	"github.com/workq/workq-backend-go/internal/pkg/calendar"
	"github.com/workq/workq-backend-go/internal/pkg/timeclock"
	"github.com/workq/workq-backend-go/internal/pkg/validator"
)

// DefaultBreakMinutes is applied when a work entry omits the break field.
const DefaultBreakMinutes = 60

// DefaultHourlyRate is the starting rate for a freshly provisioned account.
const DefaultHourlyRate = 500.0

// ========================================
// TIMESHEET DTOs
// ========================================

type UpsertWorkRequest struct {
	Date         string              `json:"-"`
	InTime       timeclock.TimeOfDay `json:"in_time"`
	OutTime      timeclock.TimeOfDay `json:"out_time"`
	BreakMinutes *int                `json:"break_minutes"`
	Notes        string              `json:"notes"`
}

// Break returns the requested break length, defaulting when omitted.
func (r *UpsertWorkRequest) Break() int {
	if r.BreakMinutes == nil {
		return DefaultBreakMinutes
	}
	return *r.BreakMinutes
}

func validateTimeOfDay(field string, t timeclock.TimeOfDay, errs validator.ValidationErrors) validator.ValidationErrors {
	if !t.IsSet() {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " hour and minute are required",
		})
		return errs
	}
	hour, err := strconv.Atoi(t.Hour)
	if err != nil || hour < 1 || hour > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " hour must be between 1 and 12",
		})
	}
	minute, err := strconv.Atoi(t.Minute)
	if err != nil || minute < 0 || minute > 59 {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " minute must be between 0 and 59",
		})
	}
	if t.Meridiem != timeclock.AM && t.Meridiem != timeclock.PM {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " meridiem must be AM or PM",
		})
	}
	return errs
}

func (r *UpsertWorkRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := calendar.ParseDateKey(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD calendar date",
		})
	}

	errs = validateTimeOfDay("in_time", r.InTime, errs)
	errs = validateTimeOfDay("out_time", r.OutTime, errs)

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertLeaveRequest struct {
	Date      string `json:"-"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

func (r *UpsertLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := calendar.ParseDateKey(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD calendar date",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if !validator.IsInSlice(r.LeaveType, ValidLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of personal, sick, vacation, emergency",
		})
	}

	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProfileRequest struct {
	HourlyRate float64 `json:"hourly_rate"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSES
// ========================================

// MutationResponse wraps a mutation result together with the persistence
// outcome: Synced is false when the in-memory write succeeded but the mirror
// to durable storage failed. The in-memory state is kept either way.
type MutationResponse struct {
	Entry  DayEntry `json:"entry"`
	Synced bool     `json:"synced"`
}

type ProfileResponse struct {
	HourlyRate float64 `json:"hourly_rate"`
	Synced     bool    `json:"synced"`
}

// ClockResponse reports the current wall-clock time in both forms the UI
// consumes.
type ClockResponse struct {
	Time    timeclock.TimeOfDay `json:"time"`
	Display string              `json:"display"`
}

// CalendarCell is one cell of the 7-column month grid. Day 0 marks a leading
// blank used to align the 1st to its weekday column.
type CalendarCell struct {
	Day   int       `json:"day"`
	Date  string    `json:"date,omitempty"`
	Entry *DayEntry `json:"entry,omitempty"`
}

type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CalendarCell `json:"cells"`
}
