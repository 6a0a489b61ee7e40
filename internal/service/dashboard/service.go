package dashboard

import (
	"context"
	"time"

	"github.com/workq/workq-backend-go/internal/domain/dashboard"
	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	timesheetservice "github.com/workq/workq-backend-go/internal/service/timesheet"
)

// recentLimit caps the recent-records list on the overview.
const recentLimit = 5

type DashboardServiceImpl struct {
	timesheets *timesheetservice.ServiceImpl
	now        func() time.Time
}

func NewDashboardService(timesheets *timesheetservice.ServiceImpl) dashboard.DashboardService {
	return &DashboardServiceImpl{
		timesheets: timesheets,
		now:        time.Now,
	}
}

// Overview implements dashboard.DashboardService.
func (d *DashboardServiceImpl) Overview(ctx context.Context) (*dashboard.OverviewResponse, error) {
	var resp dashboard.OverviewResponse

	err := d.timesheets.WithSession(ctx, func(store *timesheet.Store, hourlyRate float64) error {
		now := d.now()
		resp = dashboard.OverviewResponse{
			TotalHours:    TotalHours(store),
			TotalEarnings: TotalEarnings(store, hourlyRate),
			WorkingDays:   store.WorkDayCount(),
			LeaveDays:     store.LeaveDayCount(),
			CurrentMonth:  MonthlyStats(store, hourlyRate, now.Year(), now.Month()),
			Recent:        MostRecent(store, recentLimit),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// Monthly implements dashboard.DashboardService.
func (d *DashboardServiceImpl) Monthly(ctx context.Context, year int, month time.Month) (*dashboard.MonthlyStatsResponse, error) {
	var resp dashboard.MonthlyStatsResponse

	err := d.timesheets.WithSession(ctx, func(store *timesheet.Store, hourlyRate float64) error {
		resp = dashboard.MonthlyStatsResponse{
			Year:  year,
			Month: int(month),
			Stats: MonthlyStats(store, hourlyRate, year, month),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
