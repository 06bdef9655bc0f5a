package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)

	// List returns records joined with the employee name, newest first.
	List(ctx context.Context) ([]Attendance, error)

	// ListByEmployee returns the employee's history joined with the shift
	// window, newest first, capped at limit.
	ListByEmployee(ctx context.Context, employeeID int64, limit int) ([]Attendance, error)

	// HasCheckedInOn reports whether the employee already has a record whose
	// check-in falls on the given calendar day.
	HasCheckedInOn(ctx context.Context, employeeID int64, day time.Time) (bool, error)

	Delete(ctx context.Context, id int64) error
}
