package attendance

import "time"

const (
	// DefaultCutoffMinutes is the time-of-day cutoff used when no shift is
	// known for the check-in: 08:00.
	DefaultCutoffMinutes = 8 * 60

	// GraceMinutes is added to the shift start before a check-in counts as
	// late.
	GraceMinutes = 5
)

// ClassifyCheckIn judges a check-in wall-clock time against the expected
// shift start. On time means at or before the cutoff; the cutoff is 08:00
// when shiftStart is nil, otherwise shift start plus the grace window. Only
// the time-of-day of both arguments matters.
func ClassifyCheckIn(checkIn time.Time, shiftStart *time.Time) string {
	cutoff := DefaultCutoffMinutes * 60
	if shiftStart != nil {
		cutoff = (shiftStart.Hour()*60+shiftStart.Minute()+GraceMinutes)*60 + shiftStart.Second()
	}

	secs := checkIn.Hour()*3600 + checkIn.Minute()*60 + checkIn.Second()
	if secs <= cutoff {
		return StatusPresent
	}
	return StatusLate
}
