package shift

import "time"

type Shift struct {
	ID           int64
	EmployeeID   int64
	Date         time.Time
	StartTime    string // "HH:MM"
	EndTime      string // "HH:MM"
	IsOvertime   bool
	OvertimeNote *string

	// Joined
	EmployeeName *string
}

// StartOnDate combines the shift date with its start time-of-day.
func (s *Shift) StartOnDate() (time.Time, error) {
	clock, err := time.Parse("15:04", s.StartTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, s.Date.Location()), nil
}
