package report

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type GenerateReportRequest struct {
	Type      string  `json:"type"`
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD, Attendance only
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD, Attendance only
}

func (r *GenerateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != TypeAttendance && r.Type != TypeEmployee {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Attendance or Employee",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportResponse struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	FilePath  string `json:"file_path"`
	CreatedAt string `json:"created_at"`
	CreatedBy int64  `json:"created_by"`
}

func ToResponse(r Report) ReportResponse {
	return ReportResponse{
		ID:        r.ID,
		Type:      r.Type,
		FilePath:  r.FilePath,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		CreatedBy: r.CreatedBy,
	}
}

// AttendanceRow is one line of the Attendance CSV listing.
type AttendanceRow struct {
	ID           int64
	EmployeeName string
	TimestampIn  *string // RFC3339, nil when never checked in
	Status       string
}

// EmployeeRow is one line of the Employee CSV listing.
type EmployeeRow struct {
	ID         int64
	Name       string
	Department string
	Role       string
	Phone      string
	Email      string
}
