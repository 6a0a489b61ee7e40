package timesheet

import (
	"context"
	"time"
)

// Service is the timesheet surface exposed to the HTTP layer. The acting user
// is taken from the JWT claims in ctx; all reads and writes go through that
// user's in-memory store and are mirrored to the repository.
type Service interface {
	UpsertWork(ctx context.Context, req UpsertWorkRequest) (MutationResponse, error)
	DeleteWork(ctx context.Context, date string) (MutationResponse, error)
	UpsertLeave(ctx context.Context, req UpsertLeaveRequest) (MutationResponse, error)
	DeleteLeave(ctx context.Context, date string) (MutationResponse, error)
	Day(ctx context.Context, date string) (DayEntry, error)
	Calendar(ctx context.Context, year int, month time.Month) (CalendarResponse, error)
	Profile(ctx context.Context) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
}
