package dashboard

import (
	"context"
	"time"
)

// SummaryCounts combines the headline counts in a single query.
type SummaryCounts struct {
	Employees  int64
	Attendance int64
	Reports    int64
	Devices    int64
}

// DashboardRepository defines the aggregation queries behind the dashboard.
type DashboardRepository interface {
	// GetSummaryCounts returns entity counts in a single query.
	GetSummaryCounts(ctx context.Context) (SummaryCounts, error)

	// GetDepartmentCounts groups employees by department.
	GetDepartmentCounts(ctx context.Context) ([]DepartmentCount, error)

	// GetStatusCountsByDay groups records checked in on the given day by
	// status; NULL/empty statuses come back under the "unknown" key.
	GetStatusCountsByDay(ctx context.Context, day time.Time) (map[string]int64, error)

	// GetDailyCounts returns per-day check-in counts for [from, to), keyed
	// by "YYYY-MM-DD". Days without records are simply absent from the map.
	GetDailyCounts(ctx context.Context, from, to time.Time) (map[string]int64, error)

	// GetLatestLateCheckIns returns the most recent check-ins after the
	// default cutoff, newest first.
	GetLatestLateCheckIns(ctx context.Context, limit int) ([]LateCheckIn, error)
}
