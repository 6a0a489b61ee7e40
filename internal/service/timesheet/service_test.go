package timesheet

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workq/workq-backend-go/internal/domain/auth"
	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/pkg/timeclock"
)

// fakeRepo is an in-memory timesheet.Repository with a failure switch.
type fakeRepo struct {
	snapshots map[string]timesheet.Snapshot
	failSave  bool
	saves     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{snapshots: make(map[string]timesheet.Snapshot)}
}

func (f *fakeRepo) Load(ctx context.Context, userID string) (timesheet.Snapshot, error) {
	snap, ok := f.snapshots[userID]
	if !ok {
		return timesheet.Snapshot{HourlyRate: timesheet.DefaultHourlyRate}, nil
	}
	return snap, nil
}

func (f *fakeRepo) Save(ctx context.Context, userID string, snap timesheet.Snapshot) error {
	f.saves++
	if f.failSave {
		return errors.New("mirror unavailable")
	}
	f.snapshots[userID] = snap
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func nineToFive() (timeclock.TimeOfDay, timeclock.TimeOfDay) {
	in := timeclock.TimeOfDay{Hour: "09", Minute: "00", Meridiem: timeclock.AM}
	out := timeclock.TimeOfDay{Hour: "05", Minute: "30", Meridiem: timeclock.PM}
	return in, out
}

func newTestService(repo timesheet.Repository) *ServiceImpl {
	return NewTimesheetService(repo, slog.New(slog.DiscardHandler))
}

func TestUpsertWork_PersistsAndDerivesHours(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	in, out := nineToFive()
	breakMinutes := 30
	resp, err := svc.UpsertWork(ctx, timesheet.UpsertWorkRequest{
		Date:         "2024-03-15",
		InTime:       in,
		OutTime:      out,
		BreakMinutes: &breakMinutes,
	})
	require.NoError(t, err)
	assert.True(t, resp.Synced)
	assert.Equal(t, timesheet.EntryWork, resp.Entry.Kind)
	require.NotNil(t, resp.Entry.Work)
	assert.Equal(t, 8.0, resp.Entry.Work.WorkingHours)

	// Mirrored to the repository.
	snap := repo.snapshots["user-1"]
	assert.Contains(t, snap.Work, "2024-03-15")
	assert.Equal(t, timesheet.DefaultHourlyRate, snap.HourlyRate)
}

func TestUpsertWork_NoContext(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.UpsertWork(context.Background(), timesheet.UpsertWorkRequest{Date: "2024-03-15"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestUpsertWork_MirrorFailureKeepsMemory(t *testing.T) {
	repo := newFakeRepo()
	repo.failSave = true
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	in, out := nineToFive()
	resp, err := svc.UpsertWork(ctx, timesheet.UpsertWorkRequest{
		Date:    "2024-03-15",
		InTime:  in,
		OutTime: out,
	})
	require.NoError(t, err)
	assert.False(t, resp.Synced)

	// The entry stays readable from the session despite the failed mirror.
	entry, err := svc.Day(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, timesheet.EntryWork, entry.Kind)
}

func TestUpsertLeave_EvictsWork(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	in, out := nineToFive()
	_, err := svc.UpsertWork(ctx, timesheet.UpsertWorkRequest{
		Date: "2024-03-15", InTime: in, OutTime: out,
	})
	require.NoError(t, err)

	resp, err := svc.UpsertLeave(ctx, timesheet.UpsertLeaveRequest{
		Date:      "2024-03-15",
		LeaveType: "sick",
		Reason:    "flu",
	})
	require.NoError(t, err)
	assert.Equal(t, timesheet.EntryLeave, resp.Entry.Kind)
	assert.Nil(t, resp.Entry.Work)

	snap := repo.snapshots["user-1"]
	assert.NotContains(t, snap.Work, "2024-03-15")
	assert.Contains(t, snap.Leave, "2024-03-15")
}

func TestDeleteWork_AbsentDateStillSyncs(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	resp, err := svc.DeleteWork(ctx, "2024-03-15")
	require.NoError(t, err)
	assert.True(t, resp.Synced)
	assert.Equal(t, timesheet.EntryEmpty, resp.Entry.Kind)
}

func TestSessions_LoadOnFirstTouchOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.snapshots["user-1"] = timesheet.Snapshot{
		Work: map[string]timesheet.WorkRecord{
			"2024-03-01": {Date: "2024-03-01", WorkingHours: 8},
		},
		HourlyRate: 650,
	}
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	entry, err := svc.Day(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, timesheet.EntryWork, entry.Kind)

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 650.0, profile.HourlyRate)
}

func TestCalendar_March2024(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	in, out := nineToFive()
	_, err := svc.UpsertWork(ctx, timesheet.UpsertWorkRequest{
		Date: "2024-03-15", InTime: in, OutTime: out,
	})
	require.NoError(t, err)

	resp, err := svc.Calendar(ctx, 2024, time.March)
	require.NoError(t, err)

	// March 2024 starts on a Friday: five leading blanks, then 31 days.
	assert.Len(t, resp.Cells, 36)
	for i := 0; i < 5; i++ {
		assert.Zero(t, resp.Cells[i].Day)
		assert.Nil(t, resp.Cells[i].Entry)
	}
	assert.Equal(t, 1, resp.Cells[5].Day)
	assert.Equal(t, "2024-03-01", resp.Cells[5].Date)

	cell15 := resp.Cells[5+14]
	assert.Equal(t, 15, cell15.Day)
	require.NotNil(t, cell15.Entry)
	assert.Equal(t, timesheet.EntryWork, cell15.Entry.Kind)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	resp, err := svc.UpdateProfile(ctx, timesheet.UpdateProfileRequest{HourlyRate: 800})
	require.NoError(t, err)
	assert.True(t, resp.Synced)
	assert.Equal(t, 800.0, resp.HourlyRate)

	assert.Equal(t, 800.0, repo.snapshots["user-1"].HourlyRate)
}

func TestUpdateProfile_ZeroRateSurvivesReload(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := authedContext(t, "user-1")

	resp, err := svc.UpdateProfile(ctx, timesheet.UpdateProfileRequest{HourlyRate: 0})
	require.NoError(t, err)
	assert.True(t, resp.Synced)
	assert.Equal(t, 0.0, repo.snapshots["user-1"].HourlyRate)

	// A fresh service over the same repository simulates a restart: the
	// stored zero must not be mistaken for an unset rate.
	reloaded := newTestService(repo)
	profile, err := reloaded.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, profile.HourlyRate)
}
