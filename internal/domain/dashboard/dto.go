package dashboard

import "github.com/workq/workq-backend-go/internal/domain/timesheet"

// MonthlyStats aggregates the work records whose date falls in one month.
type MonthlyStats struct {
	Hours    float64 `json:"hours"`
	Earnings float64 `json:"earnings"`
	Days     int     `json:"days"`
}

type OverviewResponse struct {
	TotalHours    float64                `json:"total_hours"`
	TotalEarnings float64                `json:"total_earnings"`
	WorkingDays   int                    `json:"working_days"`
	LeaveDays     int                    `json:"leave_days"`
	CurrentMonth  MonthlyStats           `json:"current_month"`
	Recent        []timesheet.WorkRecord `json:"recent"`
}

type MonthlyStatsResponse struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Stats MonthlyStats `json:"stats"`
}
