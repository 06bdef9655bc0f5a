package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 16, hour, min, sec, 0, time.UTC)
}

func TestClassifyCheckIn_DefaultCutoff(t *testing.T) {
	tests := []struct {
		name    string
		checkIn time.Time
		want    string
	}{
		{"well before cutoff", at(6, 30, 0), StatusPresent},
		{"exactly at cutoff", at(8, 0, 0), StatusPresent},
		{"one second past cutoff", at(8, 0, 1), StatusLate},
		{"late morning", at(10, 15, 0), StatusLate},
		{"midnight", at(0, 0, 0), StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCheckIn(tt.checkIn, nil))
		})
	}
}

func TestClassifyCheckIn_ShiftCutoffWithGrace(t *testing.T) {
	shiftStart := at(9, 0, 0)

	tests := []struct {
		name    string
		checkIn time.Time
		want    string
	}{
		{"before shift start", at(8, 45, 0), StatusPresent},
		{"at shift start", at(9, 0, 0), StatusPresent},
		{"inside grace window", at(9, 4, 59), StatusPresent},
		{"at end of grace window", at(9, 5, 0), StatusPresent},
		{"one second past grace", at(9, 5, 1), StatusLate},
		{"well past grace", at(9, 30, 0), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCheckIn(tt.checkIn, &shiftStart))
		})
	}
}

func TestClassifyCheckIn_OnlyTimeOfDayMatters(t *testing.T) {
	shiftStart := time.Date(2020, 1, 1, 9, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 8, 31, 9, 2, 0, 0, time.UTC)

	assert.Equal(t, StatusPresent, ClassifyCheckIn(checkIn, &shiftStart))
}

func TestClassifyCheckIn_EarlyShift(t *testing.T) {
	// A 06:00 shift makes 07:00 late even though it beats the default cutoff.
	shiftStart := at(6, 0, 0)
	assert.Equal(t, StatusLate, ClassifyCheckIn(at(7, 0, 0), &shiftStart))
}
