package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidDateKey  = errors.New("date must be a valid YYYY-MM-DD calendar date")
	ErrSessionNotFound = errors.New("no timesheet session for user")
)
