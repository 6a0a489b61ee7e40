package timesheet

import "context"

// Snapshot is the durable shape of one user's timesheet: both record maps
// plus the hourly rate, mirrored wholesale on every mutation.
type Snapshot struct {
	Work       map[string]WorkRecord  `json:"work_records"`
	Leave      map[string]LeaveRecord `json:"leave_records"`
	HourlyRate float64                `json:"hourly_rate"`
}

// Repository loads and saves per-user timesheet snapshots. For a user with no
// stored data yet, Load returns an empty snapshot carrying DefaultHourlyRate
// (not an error); a stored rate is returned as-is, zero included.
type Repository interface {
	Load(ctx context.Context, userID string) (Snapshot, error)
	Save(ctx context.Context, userID string, snap Snapshot) error
}
