package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/workq/workq-backend-go/internal/domain/dashboard"
	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/pkg/calendar"
)

// TotalHours sums derived working hours across every work record.
func TotalHours(store *timesheet.Store) float64 {
	var total float64
	for _, rec := range store.WorkRecords() {
		total += rec.WorkingHours
	}
	return total
}

// TotalEarnings is total hours times the hourly rate.
func TotalEarnings(store *timesheet.Store, hourlyRate float64) float64 {
	return TotalHours(store) * hourlyRate
}

// MonthlyStats aggregates the work records whose date key falls inside the
// given month. Records are selected by string prefix on the canonical
// "YYYY-MM-DD" key, so a record never bleeds into a neighboring month.
func MonthlyStats(store *timesheet.Store, hourlyRate float64, year int, month time.Month) dashboard.MonthlyStats {
	prefix := calendar.MonthKey(year, month) + "-"

	var stats dashboard.MonthlyStats
	for _, rec := range store.WorkRecords() {
		if !strings.HasPrefix(rec.Date, prefix) {
			continue
		}
		stats.Hours += rec.WorkingHours
		stats.Days++
	}
	stats.Earnings = stats.Hours * hourlyRate
	return stats
}

// MostRecent returns up to n work records, most recent date first. A
// non-positive n yields an empty result.
func MostRecent(store *timesheet.Store, n int) []timesheet.WorkRecord {
	if n < 0 {
		n = 0
	}
	recs := store.WorkRecords()
	sort.Slice(recs, func(i, j int) bool { return recs[i].Date > recs[j].Date })
	if len(recs) > n {
		recs = recs[:n]
	}
	return recs
}
