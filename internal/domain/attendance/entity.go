package attendance

import "time"

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"

	// StatusUnknown is the sentinel bucket for records whose status column
	// is NULL or empty.
	StatusUnknown = "unknown"
)

type Attendance struct {
	ID          int64
	EmployeeID  int64
	TimestampIn *time.Time
	Status      *string
	PhotoPath   *string
	DeviceID    int64
	ShiftID     *int64
	CreatedAt   time.Time

	// Joined
	EmployeeName *string
	ShiftDate    *time.Time
	ShiftStart   *string
	ShiftEnd     *string
}
