package report

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"time"

	"github.com/facetrack/attendance-backend-go/internal/domain/report"
)

// utf8BOM makes Excel detect the encoding instead of assuming the locale
// code page.
const utf8BOM = "\uFEFF"

// Cells that Excel would otherwise coerce get prefixed: a leading
// apostrophe forces date and time cells to stay text, a leading tab keeps
// phone numbers from being parsed as numerics and losing their zeros.
const (
	textPrefix  = "'"
	phonePrefix = "\t"
)

var attendanceHeader = []string{"ID", "Employee Name", "Date", "Time", "Status"}

var employeeHeader = []string{"ID", "Name", "Department", "Role", "Phone", "Email"}

// BuildAttendanceCSV renders the attendance listing. Rows are expected in
// their final order; a total-count footer closes the file.
func BuildAttendanceCSV(rows []report.AttendanceRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(attendanceHeader); err != nil {
		return nil, err
	}

	for _, row := range rows {
		var date, clock string
		if row.TimestampIn != nil {
			if ts, err := time.Parse(time.RFC3339, *row.TimestampIn); err == nil {
				date = textPrefix + ts.Format("2006-01-02")
				clock = textPrefix + ts.Format("15:04:05")
			}
		}

		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.EmployeeName,
			date,
			clock,
			row.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{"Total", strconv.Itoa(len(rows))}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// BuildEmployeeCSV renders the employee listing followed by a
// per-department head count, largest department first.
func BuildEmployeeCSV(rows []report.EmployeeRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(employeeHeader); err != nil {
		return nil, err
	}

	for _, row := range rows {
		phone := row.Phone
		if phone != "" {
			phone = phonePrefix + phone
		}

		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Name,
			row.Department,
			row.Role,
			phone,
			row.Email,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Department", "Employees"}); err != nil {
		return nil, err
	}
	for _, dc := range departmentCounts(rows) {
		if err := w.Write([]string{dc.name, strconv.FormatInt(dc.count, 10)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type departmentCount struct {
	name  string
	count int64
}

// departmentCounts groups employees by department, folding empty values
// into "Unassigned", ordered by count descending then name.
func departmentCounts(rows []report.EmployeeRow) []departmentCount {
	byName := make(map[string]int64)
	for _, row := range rows {
		name := row.Department
		if name == "" {
			name = "Unassigned"
		}
		byName[name]++
	}

	counts := make([]departmentCount, 0, len(byName))
	for name, count := range byName {
		counts = append(counts, departmentCount{name: name, count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	return counts
}
