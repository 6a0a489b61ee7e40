package timesheet

import (
	"sort"

	"github.com/workq/workq-backend-go/internal/pkg/timeclock"
)

// Store is the date-keyed record store for one user. Keys are canonical
// "YYYY-MM-DD" strings. A date holds at most one of a work record or a leave
// record: each upsert evicts the other kind for that date.
//
// Store itself is not safe for concurrent use; the session layer serializes
// access per user.
type Store struct {
	work  map[string]WorkRecord
	leave map[string]LeaveRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		work:  make(map[string]WorkRecord),
		leave: make(map[string]LeaveRecord),
	}
}

// UpsertWork computes the record's working hours and replaces any existing
// work record for the date wholesale. A leave record on the same date is
// removed. Returns the stored record.
func (s *Store) UpsertWork(date string, in, out timeclock.TimeOfDay, breakMinutes int, notes string) WorkRecord {
	rec := WorkRecord{
		Date:         date,
		InTime:       in,
		OutTime:      out,
		BreakMinutes: breakMinutes,
		WorkingHours: timeclock.ComputeHours(in, out, breakMinutes),
		Notes:        notes,
	}
	s.work[date] = rec
	delete(s.leave, date)
	return rec
}

// DeleteWork removes the date's work record. Absent records are a no-op.
func (s *Store) DeleteWork(date string) {
	delete(s.work, date)
}

// UpsertLeave replaces any existing leave record for the date wholesale and
// removes a work record on the same date. Returns the stored record.
func (s *Store) UpsertLeave(date string, leaveType LeaveType, reason string) LeaveRecord {
	rec := LeaveRecord{
		Date:   date,
		Type:   leaveType,
		Reason: reason,
	}
	s.leave[date] = rec
	delete(s.work, date)
	return rec
}

// DeleteLeave removes the date's leave record. Absent records are a no-op.
func (s *Store) DeleteLeave(date string) {
	delete(s.leave, date)
}

// EntryFor resolves what the date holds.
func (s *Store) EntryFor(date string) DayEntry {
	if rec, ok := s.work[date]; ok {
		return DayEntry{Date: date, Kind: EntryWork, Work: &rec}
	}
	if rec, ok := s.leave[date]; ok {
		return DayEntry{Date: date, Kind: EntryLeave, Leave: &rec}
	}
	return DayEntry{Date: date, Kind: EntryEmpty}
}

// WorkRecords returns all work records ordered by date ascending.
func (s *Store) WorkRecords() []WorkRecord {
	out := make([]WorkRecord, 0, len(s.work))
	for _, rec := range s.work {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// LeaveRecords returns all leave records ordered by date ascending.
func (s *Store) LeaveRecords() []LeaveRecord {
	out := make([]LeaveRecord, 0, len(s.leave))
	for _, rec := range s.leave {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// WorkDayCount returns the number of dates holding a work record.
func (s *Store) WorkDayCount() int {
	return len(s.work)
}

// LeaveDayCount returns the number of dates holding a leave record.
func (s *Store) LeaveDayCount() int {
	return len(s.leave)
}

// Snapshot copies the store's contents into the persistence shape.
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Work:  make(map[string]WorkRecord, len(s.work)),
		Leave: make(map[string]LeaveRecord, len(s.leave)),
	}
	for date, rec := range s.work {
		snap.Work[date] = rec
	}
	for date, rec := range s.leave {
		snap.Leave[date] = rec
	}
	return snap
}

// FromSnapshot builds a store from persisted contents. Dates present in both
// maps resolve in favor of the work record.
func FromSnapshot(snap Snapshot) *Store {
	s := NewStore()
	for date, rec := range snap.Leave {
		rec.Date = date
		s.leave[date] = rec
	}
	for date, rec := range snap.Work {
		rec.Date = date
		s.work[date] = rec
		delete(s.leave, date)
	}
	return s
}
