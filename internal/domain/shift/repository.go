package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id int64) (Shift, error)

	// GetByEmployeeAndDate returns the employee's shift on the given day, or
	// (nil, nil) when none is scheduled.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Shift, error)

	// List returns shifts joined with the employee name, newest date first.
	List(ctx context.Context) ([]Shift, error)

	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id int64) error
}
