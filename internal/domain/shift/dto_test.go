package shift

import (
	"testing"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateShiftRequest {
	return CreateShiftRequest{
		EmployeeID: 1,
		Date:       "2026-03-16",
		StartTime:  "08:00",
		EndTime:    "17:00",
	}
}

func TestCreateShiftRequest_Validate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateShiftRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateShiftRequest)
		field  string
	}{
		{"missing employee", func(r *CreateShiftRequest) { r.EmployeeID = 0 }, "employee_id"},
		{"bad date", func(r *CreateShiftRequest) { r.Date = "16/03/2026" }, "date"},
		{"bad start time", func(r *CreateShiftRequest) { r.StartTime = "8am" }, "start_time"},
		{"bad end time", func(r *CreateShiftRequest) { r.EndTime = "25:00" }, "end_time"},
		{"end before start", func(r *CreateShiftRequest) { r.StartTime = "17:00"; r.EndTime = "08:00" }, "end_time"},
		{"end equals start", func(r *CreateShiftRequest) { r.EndTime = r.StartTime }, "end_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestStartOnDate(t *testing.T) {
	s := Shift{
		Date:      time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "08:30",
	}

	start, err := s.StartOnDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 16, 8, 30, 0, 0, time.UTC), start)
}

func TestStartOnDate_BadClock(t *testing.T) {
	s := Shift{Date: time.Now(), StartTime: "eight"}
	_, err := s.StartOnDate()
	assert.Error(t, err)
}
