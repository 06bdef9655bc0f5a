package dashboard

// DashboardResponse is the combined payload for the main console dashboard.
type DashboardResponse struct {
	Summary         SummaryResponse   `json:"summary"`
	DepartmentStats []DepartmentCount `json:"department_stats"`
	TodayBreakdown  DailyBreakdown    `json:"today_breakdown"`
	WeeklySeries    []SeriesPoint     `json:"weekly_series"`
	LatestLate      []LateCheckIn     `json:"latest_late"`
}

// SummaryResponse carries the headline entity counts.
type SummaryResponse struct {
	Employees   int64 `json:"employees"`
	Attendance  int64 `json:"attendance_records"`
	Reports     int64 `json:"reports"`
	Devices     int64 `json:"devices"`
	TodayChecks int64 `json:"today_check_ins"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// DailyBreakdown is the per-status view of a single day. Absent is always
// derived from the employee head count, not from explicit absent rows, so
// employees with no record for the day still show up as absent.
type DailyBreakdown struct {
	Date     string           `json:"date"`
	Statuses map[string]int64 `json:"statuses"`
	Attended int64            `json:"attended"`
	Absent   int64            `json:"absent"`
	Total    int64            `json:"total_employees"`
}

// SeriesPoint is one day of a check-in count series.
type SeriesPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

type LateCheckIn struct {
	EmployeeName string `json:"employee_name"`
	TimestampIn  string `json:"timestamp_in"`
}

// MonthlyResponse is the per-day series for one calendar month.
type MonthlyResponse struct {
	Year   int           `json:"year"`
	Month  int           `json:"month"`
	Series []SeriesPoint `json:"series"`
}
