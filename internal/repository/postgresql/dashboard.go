package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/dashboard"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetSummaryCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetSummaryCounts(ctx context.Context) (dashboard.SummaryCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM attendance_records),
			(SELECT COUNT(*) FROM reports),
			(SELECT COUNT(*) FROM devices)
	`

	var counts dashboard.SummaryCounts
	err := q.QueryRow(ctx, query).
		Scan(&counts.Employees, &counts.Attendance, &counts.Reports, &counts.Devices)
	if err != nil {
		return dashboard.SummaryCounts{}, fmt.Errorf("failed to get summary counts: %w", err)
	}

	return counts, nil
}

// GetDepartmentCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetDepartmentCounts(ctx context.Context) ([]dashboard.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(NULLIF(department, ''), 'Unassigned'), COUNT(*)
		FROM employees
		GROUP BY 1
		ORDER BY COUNT(*) DESC, 1
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department counts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.DepartmentCount
	for rows.Next() {
		var c dashboard.DepartmentCount
		if err := rows.Scan(&c.Department, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetStatusCountsByDay implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetStatusCountsByDay(ctx context.Context, day time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(NULLIF(LOWER(status), ''), 'unknown'), COUNT(*)
		FROM attendance_records
		WHERE timestamp_in::date = $1::date
		GROUP BY 1
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get status counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetDailyCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetDailyCounts(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(timestamp_in::date, 'YYYY-MM-DD'), COUNT(*)
		FROM attendance_records
		WHERE timestamp_in >= $1 AND timestamp_in < $2
		GROUP BY 1
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var day string
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		counts[day] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetLatestLateCheckIns implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetLatestLateCheckIns(ctx context.Context, limit int) ([]dashboard.LateCheckIn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.name, a.timestamp_in
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE LOWER(a.status) = 'late' AND a.timestamp_in IS NOT NULL
		ORDER BY a.timestamp_in DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest late check-ins: %w", err)
	}
	defer rows.Close()

	var result []dashboard.LateCheckIn
	for rows.Next() {
		var name string
		var ts time.Time
		if err := rows.Scan(&name, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan late check-in: %w", err)
		}
		result = append(result, dashboard.LateCheckIn{
			EmployeeName: name,
			TimestampIn:  ts.Format(time.RFC3339),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
