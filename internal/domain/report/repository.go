package report

import (
	"context"
	"time"
)

// ReportRepository persists report metadata and supplies the listing data
// the CSV artifacts are built from.
type ReportRepository interface {
	Create(ctx context.Context, r Report) (Report, error)
	GetByID(ctx context.Context, id int64) (Report, error)
	List(ctx context.Context) ([]Report, error)
	Delete(ctx context.Context, id int64) error

	// AttendanceRows returns records joined with the employee name, filtered
	// by an optional inclusive timestamp range, ascending by timestamp.
	AttendanceRows(ctx context.Context, start, end *time.Time) ([]AttendanceRow, error)

	// EmployeeRows returns all employees sorted by department then name.
	EmployeeRows(ctx context.Context) ([]EmployeeRow, error)
}
