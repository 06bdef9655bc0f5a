package report

import "time"

const (
	TypeAttendance = "Attendance"
	TypeEmployee   = "Employee"
)

type Report struct {
	ID        int64
	Type      string
	FilePath  string
	CreatedAt time.Time
	CreatedBy int64
}
