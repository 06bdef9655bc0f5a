package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/shift"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	s.id, s.employee_id, s.date,
	to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI'),
	s.is_overtime, s.overtime_note, e.name
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.StartTime, &s.EndTime,
		&s.IsOvertime, &s.OvertimeNote, &s.EmployeeName,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (employee_id, date, start_time, end_time, is_overtime, overtime_note)
		VALUES ($1, $2, $3::time, $4::time, $5, $6)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.Date, s.StartTime, s.EndTime, s.IsOvertime, s.OvertimeNote,
	).Scan(&s.ID)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return s, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.id = $1
	`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by ID: %w", err)
	}

	return s, nil
}

// GetByEmployeeAndDate implements shift.ShiftRepository.
// Returns nil when the employee has no shift on that day.
func (r *shiftRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		WHERE s.employee_id = $1 AND s.date = $2::date
		ORDER BY s.start_time
		LIMIT 1
	`

	s, err := scanShift(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift by employee and date: %w", err)
	}

	return &s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts s
		JOIN employees e ON e.id = s.employee_id
		ORDER BY s.date DESC, s.start_time, s.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET employee_id = $2, date = $3, start_time = $4::time, end_time = $5::time,
			is_overtime = $6, overtime_note = $7
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		s.ID, s.EmployeeID, s.Date, s.StartTime, s.EndTime, s.IsOvertime, s.OvertimeNote,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
