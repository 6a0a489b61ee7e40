package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/domain/user"
	"github.com/workq/workq-backend-go/internal/pkg/sqlitedb"
	"github.com/workq/workq-backend-go/internal/pkg/timeclock"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlitedb.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB) string {
	t.Helper()
	repo := NewUserRepository(db)
	u, err := repo.Create(context.Background(), user.User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@example.com",
		FullName:     "Test User",
		EmployeeCode: "EMP-001",
		Role:         user.RoleEmployee,
	})
	require.NoError(t, err)
	return u.ID
}

func TestTimesheetRepository_LoadEmpty(t *testing.T) {
	db := openTestDB(t)
	userID := createTestUser(t, db)
	repo := NewTimesheetRepository(db)

	snap, err := repo.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, snap.Work)
	assert.Empty(t, snap.Leave)
	assert.Equal(t, timesheet.DefaultHourlyRate, snap.HourlyRate)
}

func TestTimesheetRepository_ZeroRateRoundTrips(t *testing.T) {
	db := openTestDB(t)
	userID := createTestUser(t, db)
	repo := NewTimesheetRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, userID, timesheet.Snapshot{HourlyRate: 0}))

	loaded, err := repo.Load(ctx, userID)
	require.NoError(t, err)
	// A stored zero is a real rate, not an unset one.
	assert.Equal(t, 0.0, loaded.HourlyRate)
}

func TestTimesheetRepository_SaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)
	userID := createTestUser(t, db)
	repo := NewTimesheetRepository(db)
	ctx := context.Background()

	snap := timesheet.Snapshot{
		Work: map[string]timesheet.WorkRecord{
			"2024-03-15": {
				Date:         "2024-03-15",
				InTime:       timeclock.TimeOfDay{Hour: "9", Minute: "00", Meridiem: timeclock.AM},
				OutTime:      timeclock.TimeOfDay{Hour: "05", Minute: "30", Meridiem: timeclock.PM},
				BreakMinutes: 30,
				WorkingHours: 8.0,
				Notes:        "release day",
			},
		},
		Leave: map[string]timesheet.LeaveRecord{
			"2024-03-18": {
				Date:   "2024-03-18",
				Type:   timesheet.LeaveSick,
				Reason: "flu",
			},
		},
		HourlyRate: 500,
	}

	require.NoError(t, repo.Save(ctx, userID, snap))

	loaded, err := repo.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, snap.Work, loaded.Work)
	assert.Equal(t, snap.Leave, loaded.Leave)
	assert.Equal(t, 500.0, loaded.HourlyRate)

	// The clock-in hour comes back exactly as stored, unpadded.
	assert.Equal(t, "9", loaded.Work["2024-03-15"].InTime.Hour)
}

func TestTimesheetRepository_SaveIsWholesale(t *testing.T) {
	db := openTestDB(t)
	userID := createTestUser(t, db)
	repo := NewTimesheetRepository(db)
	ctx := context.Background()

	first := timesheet.Snapshot{
		Work: map[string]timesheet.WorkRecord{
			"2024-03-15": {Date: "2024-03-15", WorkingHours: 8},
			"2024-03-16": {Date: "2024-03-16", WorkingHours: 4},
		},
		Leave:      map[string]timesheet.LeaveRecord{},
		HourlyRate: 500,
	}
	require.NoError(t, repo.Save(ctx, userID, first))

	second := timesheet.Snapshot{
		Work: map[string]timesheet.WorkRecord{
			"2024-03-16": {Date: "2024-03-16", WorkingHours: 6},
		},
		Leave:      map[string]timesheet.LeaveRecord{},
		HourlyRate: 750,
	}
	require.NoError(t, repo.Save(ctx, userID, second))

	loaded, err := repo.Load(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, loaded.Work, 1)
	assert.Equal(t, 6.0, loaded.Work["2024-03-16"].WorkingHours)
	assert.Equal(t, 750.0, loaded.HourlyRate)
}

func TestTimesheetRepository_UsersAreIsolated(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db)
	bob := createTestUser(t, db)
	repo := NewTimesheetRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, alice, timesheet.Snapshot{
		Work:       map[string]timesheet.WorkRecord{"2024-01-02": {Date: "2024-01-02", WorkingHours: 8}},
		Leave:      map[string]timesheet.LeaveRecord{},
		HourlyRate: 500,
	}))

	loaded, err := repo.Load(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, loaded.Work)
}
