package shift

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"`       // YYYY-MM-DD
	StartTime    string  `json:"start_time"` // HH:MM
	EndTime      string  `json:"end_time"`   // HH:MM
	IsOvertime   bool    `json:"is_overtime"`
	OvertimeNote *string `json:"overtime_note,omitempty"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	start, startOK := validator.IsValidClock(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	end, endOK := validator.IsValidClock(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if startOK && endOK && !start.Before(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be after start_time",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest = CreateShiftRequest

type ShiftResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	IsOvertime   bool    `json:"is_overtime"`
	OvertimeNote *string `json:"overtime_note,omitempty"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Date:         s.Date.Format("2006-01-02"),
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		IsOvertime:   s.IsOvertime,
		OvertimeNote: s.OvertimeNote,
	}
}
