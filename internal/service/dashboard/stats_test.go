package dashboard

import (
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
)

func TestBuildDailyBreakdown(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	got := BuildDailyBreakdown(day, map[string]int64{
		"present": 7,
		"late":    2,
		"unknown": 1,
	}, 15)

	assert.Equal(t, "2026-03-16", got.Date)
	assert.Equal(t, int64(9), got.Attended)
	assert.Equal(t, int64(6), got.Absent)
	assert.Equal(t, int64(15), got.Total)
	assert.Equal(t, int64(6), got.Statuses["absent"])
}

func TestBuildDailyBreakdown_ReplacesStoredAbsentRows(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	// Manually entered absent rows do not survive into the breakdown; the
	// derived figure wins.
	raw := map[string]int64{"present": 5, "absent": 99}
	got := BuildDailyBreakdown(day, raw, 8)

	assert.Equal(t, int64(3), got.Absent)
	assert.Equal(t, int64(3), got.Statuses["absent"])
	assert.Equal(t, int64(99), raw["absent"], "input map must not be mutated")
}

func TestBuildDailyBreakdown_AbsentNeverNegative(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	// Stale records from deleted employees can outnumber the head count.
	got := BuildDailyBreakdown(day, map[string]int64{"present": 10}, 4)

	assert.Equal(t, int64(10), got.Attended)
	assert.Equal(t, int64(0), got.Absent)
}

func TestBuildDailyBreakdown_NoRecords(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	got := BuildDailyBreakdown(day, nil, 12)

	assert.Equal(t, int64(0), got.Attended)
	assert.Equal(t, int64(12), got.Absent)
	assert.Equal(t, int64(12), got.Statuses["absent"])
}

func TestTrailingSeries(t *testing.T) {
	today := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	got := TrailingSeries(today, 7, map[string]int64{
		"2026-03-16": 5,
		"2026-03-14": 3,
	})

	assert.Len(t, got, 7)
	assert.Equal(t, dashboard.SeriesPoint{Date: "2026-03-10", Count: 0}, got[0])
	assert.Equal(t, dashboard.SeriesPoint{Date: "2026-03-14", Count: 3}, got[4])
	assert.Equal(t, dashboard.SeriesPoint{Date: "2026-03-16", Count: 5}, got[6])
}

func TestTrailingSeries_CrossesMonthBoundary(t *testing.T) {
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	got := TrailingSeries(today, 7, nil)

	assert.Equal(t, "2026-02-24", got[0].Date)
	assert.Equal(t, "2026-03-02", got[6].Date)
}

func TestMonthSeries(t *testing.T) {
	got := MonthSeries(2026, time.February, map[string]int64{
		"2026-02-01": 4,
		"2026-02-28": 9,
	})

	assert.Len(t, got, 28)
	assert.Equal(t, dashboard.SeriesPoint{Date: "2026-02-01", Count: 4}, got[0])
	assert.Equal(t, dashboard.SeriesPoint{Date: "2026-02-15", Count: 0}, got[14])
	assert.Equal(t, dashboard.SeriesPoint{Date: "2026-02-28", Count: 9}, got[27])
}

func TestMonthSeries_LeapYear(t *testing.T) {
	got := MonthSeries(2028, time.February, nil)
	assert.Len(t, got, 29)
	assert.Equal(t, "2028-02-29", got[28].Date)
}
