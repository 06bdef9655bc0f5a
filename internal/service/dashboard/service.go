package dashboard

import (
	"context"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

// weeklyDays is the length of the trailing check-in series on the console
// landing page.
const weeklyDays = 7

// lateLimit caps the "latest late arrivals" widget.
const lateLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// GetDashboard implements dashboard.DashboardService.
// The widgets are independent, so their queries fan out concurrently.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		summary     dashboard.SummaryCounts
		departments []dashboard.DepartmentCount
		statuses    map[string]int64
		daily       map[string]int64
		late        []dashboard.LateCheckIn
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Headline entity counts (1 query)
	g.Go(func() error {
		var err error
		summary, err = s.GetSummaryCounts(gCtx)
		return err
	})

	// 2. Employees per department
	g.Go(func() error {
		var err error
		departments, err = s.GetDepartmentCounts(gCtx)
		return err
	})

	// 3. Today's records grouped by status
	g.Go(func() error {
		var err error
		statuses, err = s.GetStatusCountsByDay(gCtx, today)
		return err
	})

	// 4. Trailing week of check-in counts
	g.Go(func() error {
		var err error
		daily, err = s.GetDailyCounts(gCtx, today.AddDate(0, 0, -(weeklyDays-1)), today.AddDate(0, 0, 1))
		return err
	})

	// 5. Latest late arrivals
	g.Go(func() error {
		var err error
		late, err = s.GetLatestLateCheckIns(gCtx, lateLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.DashboardResponse{}, err
	}

	breakdown := BuildDailyBreakdown(today, statuses, summary.Employees)

	var todayChecks int64
	for _, count := range statuses {
		todayChecks += count
	}

	return dashboard.DashboardResponse{
		Summary: dashboard.SummaryResponse{
			Employees:   summary.Employees,
			Attendance:  summary.Attendance,
			Reports:     summary.Reports,
			Devices:     summary.Devices,
			TodayChecks: todayChecks,
		},
		DepartmentStats: departments,
		TodayBreakdown:  breakdown,
		WeeklySeries:    TrailingSeries(today, weeklyDays, daily),
		LatestLate:      late,
	}, nil
}

// GetMonthly implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetMonthly(ctx context.Context, year, month int) (dashboard.MonthlyResponse, error) {
	m := time.Month(month)
	first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	daily, err := s.GetDailyCounts(ctx, first, next)
	if err != nil {
		return dashboard.MonthlyResponse{}, err
	}

	return dashboard.MonthlyResponse{
		Year:   year,
		Month:  month,
		Series: MonthSeries(year, m, daily),
	}, nil
}
