package dashboard

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/pkg/sqlitedb"
	"github.com/workq/workq-backend-go/internal/pkg/timeclock"
	"github.com/workq/workq-backend-go/internal/repository/sqlite"
	timesheetservice "github.com/workq/workq-backend-go/internal/service/timesheet"
)

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

func newTestStack(t *testing.T) (*timesheetservice.ServiceImpl, *DashboardServiceImpl) {
	t.Helper()
	db, err := sqlitedb.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ts := timesheetservice.NewTimesheetService(
		sqlite.NewTimesheetRepository(db),
		slog.New(slog.DiscardHandler),
	)
	return ts, NewDashboardService(ts).(*DashboardServiceImpl)
}

func TestOverview_EndToEnd(t *testing.T) {
	ts, dash := newTestStack(t)
	dash.now = func() time.Time { return time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC) }
	ctx := authedContext(t, "user-1")

	// One 9:00 AM to 5:30 PM shift with a 30 minute break is 8 hours.
	breakMinutes := 30
	_, err := ts.UpsertWork(ctx, timesheet.UpsertWorkRequest{
		Date:         "2024-03-15",
		InTime:       timeclock.TimeOfDay{Hour: "09", Minute: "00", Meridiem: timeclock.AM},
		OutTime:      timeclock.TimeOfDay{Hour: "05", Minute: "30", Meridiem: timeclock.PM},
		BreakMinutes: &breakMinutes,
	})
	require.NoError(t, err)

	_, err = ts.UpsertLeave(ctx, timesheet.UpsertLeaveRequest{
		Date:      "2024-03-18",
		LeaveType: "personal",
	})
	require.NoError(t, err)

	overview, err := dash.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, 8.0, overview.TotalHours)
	assert.Equal(t, 4000.0, overview.TotalEarnings)
	assert.Equal(t, 1, overview.WorkingDays)
	assert.Equal(t, 1, overview.LeaveDays)
	assert.Equal(t, 8.0, overview.CurrentMonth.Hours)
	assert.Equal(t, 1, overview.CurrentMonth.Days)
	require.Len(t, overview.Recent, 1)
	assert.Equal(t, "2024-03-15", overview.Recent[0].Date)
}

func TestOverview_ReflectsMutations(t *testing.T) {
	ts, dash := newTestStack(t)
	ctx := authedContext(t, "user-1")

	_, err := ts.UpsertWork(ctx, timesheet.UpsertWorkRequest{
		Date:    "2024-03-15",
		InTime:  timeclock.TimeOfDay{Hour: "09", Minute: "00", Meridiem: timeclock.AM},
		OutTime: timeclock.TimeOfDay{Hour: "05", Minute: "00", Meridiem: timeclock.PM},
	})
	require.NoError(t, err)

	_, err = ts.DeleteWork(ctx, "2024-03-15")
	require.NoError(t, err)

	overview, err := dash.Overview(ctx)
	require.NoError(t, err)
	assert.Zero(t, overview.TotalHours)
	assert.Zero(t, overview.WorkingDays)
	assert.Empty(t, overview.Recent)
}

func TestMonthly(t *testing.T) {
	ts, dash := newTestStack(t)
	ctx := authedContext(t, "user-1")

	_, err := ts.UpsertWork(ctx, timesheet.UpsertWorkRequest{
		Date:    "2024-02-29",
		InTime:  timeclock.TimeOfDay{Hour: "09", Minute: "00", Meridiem: timeclock.AM},
		OutTime: timeclock.TimeOfDay{Hour: "06", Minute: "00", Meridiem: timeclock.PM},
	})
	require.NoError(t, err)

	feb, err := dash.Monthly(ctx, 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 2024, feb.Year)
	assert.Equal(t, 2, feb.Month)
	assert.Equal(t, 1, feb.Stats.Days)
	assert.Equal(t, 8.0, feb.Stats.Hours)

	mar, err := dash.Monthly(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.Zero(t, mar.Stats.Days)
}
