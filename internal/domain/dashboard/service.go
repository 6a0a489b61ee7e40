package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	Overview(ctx context.Context) (*OverviewResponse, error)
	Monthly(ctx context.Context, year int, month time.Month) (*MonthlyStatsResponse, error)
}
