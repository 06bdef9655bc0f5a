package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("employee has already checked in today")
	ErrEmployeeLocked     = errors.New("employee account is locked")
)
