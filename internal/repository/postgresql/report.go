package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// Create implements report.ReportRepository.
func (r *reportRepository) Create(ctx context.Context, rep report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reports (type, file_path, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, rep.Type, rep.FilePath, rep.CreatedBy).
		Scan(&rep.ID, &rep.CreatedAt)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to create report: %w", err)
	}

	return rep, nil
}

// GetByID implements report.ReportRepository.
func (r *reportRepository) GetByID(ctx context.Context, id int64) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, type, file_path, created_at, created_by FROM reports WHERE id = $1`

	var rep report.Report
	err := q.QueryRow(ctx, query, id).
		Scan(&rep.ID, &rep.Type, &rep.FilePath, &rep.CreatedAt, &rep.CreatedBy)
	if err != nil {
		if err == pgx.ErrNoRows {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report by ID: %w", err)
	}

	return rep, nil
}

// List implements report.ReportRepository.
func (r *reportRepository) List(ctx context.Context) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, type, file_path, created_at, created_by FROM reports ORDER BY created_at DESC, id DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		var rep report.Report
		if err := rows.Scan(&rep.ID, &rep.Type, &rep.FilePath, &rep.CreatedAt, &rep.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// Delete implements report.ReportRepository.
func (r *reportRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return report.ErrReportNotFound
	}

	return nil
}

// AttendanceRows implements report.ReportRepository.
func (r *reportRepository) AttendanceRows(ctx context.Context, start, end *time.Time) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, e.name, a.timestamp_in, COALESCE(a.status, '')
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE ($1::timestamptz IS NULL OR a.timestamp_in >= $1)
		  AND ($2::timestamptz IS NULL OR a.timestamp_in <= $2)
		ORDER BY a.timestamp_in ASC NULLS LAST, a.id ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance rows: %w", err)
	}
	defer rows.Close()

	var result []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		var ts *time.Time
		if err := rows.Scan(&row.ID, &row.EmployeeName, &ts, &row.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		if ts != nil {
			formatted := ts.Format(time.RFC3339)
			row.TimestampIn = &formatted
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// EmployeeRows implements report.ReportRepository.
func (r *reportRepository) EmployeeRows(ctx context.Context) ([]report.EmployeeRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, COALESCE(department, ''), role, COALESCE(phone, ''), COALESCE(email, '')
		FROM employees
		ORDER BY department NULLS LAST, name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee rows: %w", err)
	}
	defer rows.Close()

	var result []report.EmployeeRow
	for rows.Next() {
		var row report.EmployeeRow
		if err := rows.Scan(&row.ID, &row.Name, &row.Department, &row.Role, &row.Phone, &row.Email); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
