package attendance

import "context"

// AttendanceService covers the console record screens, the device check-in
// endpoint and the mobile history feed.
type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id int64) (AttendanceResponse, error)
	List(ctx context.Context) ([]AttendanceResponse, error)
	Delete(ctx context.Context, id int64) error

	// CheckIn records a device-originated check-in, classifying it against
	// the employee's shift for today when one exists.
	CheckIn(ctx context.Context, deviceID int64, req CheckInRequest) (AttendanceResponse, error)

	// EmployeeHistory backs GET /attendance/employee/{id} for the mobile app.
	EmployeeHistory(ctx context.Context, employeeID int64) ([]AttendanceResponse, error)
}
