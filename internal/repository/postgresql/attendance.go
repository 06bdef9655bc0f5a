package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.timestamp_in, a.status, a.photo_path,
	a.device_id, a.shift_id, a.created_at,
	e.name, s.date,
	to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI')
`

const attendanceJoins = `
	FROM attendance_records a
	JOIN employees e ON e.id = a.employee_id
	LEFT JOIN shifts s ON s.id = a.shift_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.TimestampIn, &a.Status, &a.PhotoPath,
		&a.DeviceID, &a.ShiftID, &a.CreatedAt,
		&a.EmployeeName, &a.ShiftDate, &a.ShiftStart, &a.ShiftEnd,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, timestamp_in, status, photo_path, device_id, shift_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.EmployeeID, a.TimestampIn, a.Status, a.PhotoPath, a.DeviceID, a.ShiftID,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return a, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` ORDER BY a.timestamp_in DESC NULLS LAST, a.id DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + attendanceJoins + `
		WHERE a.employee_id = $1
		ORDER BY a.timestamp_in DESC NULLS LAST, a.id DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by employee: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// HasCheckedInOn implements attendance.AttendanceRepository.
func (r *attendanceRepository) HasCheckedInOn(ctx context.Context, employeeID int64, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE employee_id = $1 AND timestamp_in::date = $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, day).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing check-in: %w", err)
	}

	return exists, nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
