package timesheet

import (
	"github.com/workq/workq-backend-go/internal/pkg/timeclock"
)

// LeaveType classifies a leave day.
type LeaveType string

const (
	LeavePersonal  LeaveType = "personal"
	LeaveSick      LeaveType = "sick"
	LeaveVacation  LeaveType = "vacation"
	LeaveEmergency LeaveType = "emergency"
)

// ValidLeaveTypes lists every accepted leave type value.
var ValidLeaveTypes = []string{
	string(LeavePersonal),
	string(LeaveSick),
	string(LeaveVacation),
	string(LeaveEmergency),
}

// WorkRecord is one clocked day. WorkingHours is derived from the in/out
// times and break on every write and is never set independently.
type WorkRecord struct {
	Date         string              `json:"date"`
	InTime       timeclock.TimeOfDay `json:"in_time"`
	OutTime      timeclock.TimeOfDay `json:"out_time"`
	BreakMinutes int                 `json:"break_minutes"`
	WorkingHours float64             `json:"working_hours"`
	Notes        string              `json:"notes,omitempty"`
}

// LeaveRecord marks one date as a non-working leave day.
type LeaveRecord struct {
	Date   string    `json:"date"`
	Type   LeaveType `json:"leave_type"`
	Reason string    `json:"reason,omitempty"`
}

// EntryKind tags what a calendar date holds.
type EntryKind string

const (
	EntryEmpty EntryKind = "empty"
	EntryWork  EntryKind = "work"
	EntryLeave EntryKind = "leave"
)

// DayEntry is what a single calendar date resolves to. Exactly one of Work
// and Leave is non-nil when Kind is not EntryEmpty; the store enforces that a
// date never holds both.
type DayEntry struct {
	Date  string       `json:"date"`
	Kind  EntryKind    `json:"kind"`
	Work  *WorkRecord  `json:"work,omitempty"`
	Leave *LeaveRecord `json:"leave,omitempty"`
}
