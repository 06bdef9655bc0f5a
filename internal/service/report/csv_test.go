package report

import (
	"strings"
	"testing"

	"github.com/facetrack/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildAttendanceCSV(t *testing.T) {
	rows := []report.AttendanceRow{
		{ID: 1, EmployeeName: "Nguyen Van A", TimestampIn: strPtr("2026-03-16T07:55:00Z"), Status: "present"},
		{ID: 2, EmployeeName: "Tran Thi B", TimestampIn: strPtr("2026-03-16T08:20:30Z"), Status: "late"},
		{ID: 3, EmployeeName: "No Show", Status: "absent"},
	}

	out, err := BuildAttendanceCSV(rows)
	require.NoError(t, err)

	content := string(out)
	assert.True(t, strings.HasPrefix(content, "\uFEFF"), "missing UTF-8 BOM")

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(content, "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "ID,Employee Name,Date,Time,Status", lines[0])
	assert.Equal(t, "1,Nguyen Van A,'2026-03-16,'07:55:00,present", lines[1])
	assert.Equal(t, "2,Tran Thi B,'2026-03-16,'08:20:30,late", lines[2])
	// Never-checked-in rows keep empty date and time cells.
	assert.Equal(t, "3,No Show,,,absent", lines[3])
	assert.Equal(t, "Total,3", lines[4])
}

func TestBuildAttendanceCSV_QuotesSpecialCharacters(t *testing.T) {
	rows := []report.AttendanceRow{
		{ID: 7, EmployeeName: `Doe, John "JD"`, TimestampIn: strPtr("2026-03-16T07:00:00Z"), Status: "present"},
	}

	out, err := BuildAttendanceCSV(rows)
	require.NoError(t, err)

	// encoding/csv wraps the field and doubles embedded quotes.
	assert.Contains(t, string(out), `"Doe, John ""JD"""`)
}

func TestBuildAttendanceCSV_Empty(t *testing.T) {
	out, err := BuildAttendanceCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(string(out), "\uFEFF"), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Total,0", lines[1])
}

func TestBuildEmployeeCSV(t *testing.T) {
	rows := []report.EmployeeRow{
		{ID: 1, Name: "Nguyen Van A", Department: "Engineering", Role: "Employee", Phone: "0901234567", Email: "a@example.com"},
		{ID: 2, Name: "Tran Thi B", Department: "Engineering", Role: "Employee", Phone: "", Email: "b@example.com"},
		{ID: 3, Name: "Le Van C", Department: "", Role: "Employee", Phone: "0907654321", Email: ""},
	}

	out, err := BuildEmployeeCSV(rows)
	require.NoError(t, err)

	content := strings.TrimPrefix(string(out), "\uFEFF")
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	assert.Equal(t, "ID,Name,Department,Role,Phone,Email", lines[0])
	// Phone cells carry a leading tab so spreadsheets keep the zeros.
	assert.Contains(t, lines[1], "\t0901234567")
	// Empty phone stays empty, no stray prefix.
	assert.Equal(t, "2,Tran Thi B,Engineering,Employee,,b@example.com", lines[2])

	// Footer: department counts, largest first, empty folded to Unassigned.
	assert.Equal(t, "Department,Employees", lines[5])
	assert.Equal(t, "Engineering,2", lines[6])
	assert.Equal(t, "Unassigned,1", lines[7])
}

func TestDepartmentCounts_TiesSortedByName(t *testing.T) {
	rows := []report.EmployeeRow{
		{ID: 1, Department: "Sales"},
		{ID: 2, Department: "HR"},
	}

	counts := departmentCounts(rows)
	require.Len(t, counts, 2)
	assert.Equal(t, "HR", counts[0].name)
	assert.Equal(t, "Sales", counts[1].name)
}

func TestBuildEmployeeCSV_NonASCII(t *testing.T) {
	rows := []report.EmployeeRow{
		{ID: 1, Name: "Nguyễn Văn Đức", Department: "Kỹ thuật", Role: "Employee"},
	}

	out, err := BuildEmployeeCSV(rows)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Nguyễn Văn Đức")
}
