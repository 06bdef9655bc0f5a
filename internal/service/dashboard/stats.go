package dashboard

import (
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/dashboard"
)

// BuildDailyBreakdown folds the per-status counts of one day into the
// console widget shape. Attended is present plus late; absent is everyone
// else on the payroll, never negative even if stale records outnumber the
// current head count. The derived absent figure replaces any stored absent
// rows, so every consumer reads the same number.
func BuildDailyBreakdown(day time.Time, statuses map[string]int64, totalEmployees int64) dashboard.DailyBreakdown {
	counts := make(map[string]int64, len(statuses)+1)
	for status, n := range statuses {
		counts[status] = n
	}

	attended := counts[attendance.StatusPresent] + counts[attendance.StatusLate]
	absent := totalEmployees - attended
	if absent < 0 {
		absent = 0
	}
	counts[attendance.StatusAbsent] = absent

	return dashboard.DailyBreakdown{
		Date:     day.Format("2006-01-02"),
		Statuses: counts,
		Attended: attended,
		Absent:   absent,
		Total:    totalEmployees,
	}
}

// TrailingSeries expands per-day counts into a dense series covering the
// `days` days ending at `today`, oldest first. Days with no check-ins show
// up as zero instead of being skipped.
func TrailingSeries(today time.Time, days int, counts map[string]int64) []dashboard.SeriesPoint {
	series := make([]dashboard.SeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		series = append(series, dashboard.SeriesPoint{
			Date:  date,
			Count: counts[date],
		})
	}
	return series
}

// MonthSeries expands per-day counts into one point per calendar day of the
// given month, zero-filled.
func MonthSeries(year int, month time.Month, counts map[string]int64) []dashboard.SeriesPoint {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	series := make([]dashboard.SeriesPoint, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		series = append(series, dashboard.SeriesPoint{
			Date:  date,
			Count: counts[date],
		})
	}
	return series
}
