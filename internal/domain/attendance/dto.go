package attendance

import (
	"time"

	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID  int64   `json:"employee_id"`
	TimestampIn *string `json:"timestamp_in,omitempty"` // RFC3339
	Status      *string `json:"status,omitempty"`
	PhotoPath   *string `json:"photo_path,omitempty"`
	DeviceID    int64   `json:"device_id"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.TimestampIn != nil {
		if _, err := time.Parse(time.RFC3339, *r.TimestampIn); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp_in",
				Message: "timestamp_in must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckInRequest is what a registered attendance device posts after it has
// recognized an employee. The snapshot the camera captured rides along as
// base64; storing it is best-effort.
type CheckInRequest struct {
	EmployeeID  int64   `json:"employee_id"`
	PhotoBase64 *string `json:"photo_base64,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	TimestampIn  *string `json:"timestamp_in,omitempty"`
	Status       *string `json:"status,omitempty"`
	PhotoPath    *string `json:"photo_path,omitempty"`
	DeviceID     int64   `json:"device_id"`
	ShiftDate    *string `json:"shift_date,omitempty"`
	ShiftStart   *string `json:"shift_start,omitempty"`
	ShiftEnd     *string `json:"shift_end,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Status:       a.Status,
		PhotoPath:    a.PhotoPath,
		DeviceID:     a.DeviceID,
		ShiftStart:   a.ShiftStart,
		ShiftEnd:     a.ShiftEnd,
	}
	if a.TimestampIn != nil {
		ts := a.TimestampIn.Format(time.RFC3339)
		resp.TimestampIn = &ts
	}
	if a.ShiftDate != nil {
		d := a.ShiftDate.Format("2006-01-02")
		resp.ShiftDate = &d
	}
	return resp
}
