package response

import (
	"errors"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/facetrack/attendance-backend-go/internal/domain/auth"
	"github.com/facetrack/attendance-backend-go/internal/domain/device"
	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/facetrack/attendance-backend-go/internal/domain/shift"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountLocked):
		Forbidden(w, "Account is locked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPhoneUsedAsUsername):
		Conflict(w, "Phone number is already used as a login username")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee has already checked in today")
	case errors.Is(err, attendance.ErrEmployeeLocked):
		Forbidden(w, "Employee account is locked")

	// Device domain errors
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrInvalidAPIKey):
		Unauthorized(w, "Invalid device API key")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")
	case errors.Is(err, report.ErrFileMissing):
		NotFound(w, "Report file not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrEmployeeAlreadyLinked):
		Conflict(w, "Employee already has an account")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrWrongCurrentPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrPasswordMismatch):
		BadRequest(w, "New password and confirmation do not match", nil)
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager or admin access required")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
