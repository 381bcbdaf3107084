package dashboard

// SummaryResponse is the combined payload behind the dashboard endpoint.
// Admin-only blocks are nil for regular staff.
type SummaryResponse struct {
	DaysWorked        int `json:"days_worked"`
	DaysWorkedPercent int `json:"days_worked_percent"`
	LateArrivals      int `json:"late_arrivals"`
	VacationDaysLeft  int `json:"vacation_days_left"`

	RecentAttendance []RecentAttendanceItem `json:"recent_attendance"`
	RecentLeaves     []RecentLeaveItem      `json:"recent_leaves"`
	UpcomingTimeOff  []UpcomingTimeOffItem  `json:"upcoming_time_off"`

	Admin *AdminExtras `json:"admin,omitempty"`
}

// AdminExtras carries the organisation-wide blocks only admins see.
type AdminExtras struct {
	PendingLeaveRequests int `json:"pending_leave_requests"`
	ActiveEmployees      int `json:"active_employees"`
	OnTimePercentToday   int `json:"on_time_percent_today"`
}

// RecentAttendanceItem is one row of the caller's latest attendance records.
type RecentAttendanceItem struct {
	Date     string `json:"date"`
	SignIn   string `json:"sign_in,omitempty"`
	SignOut  string `json:"sign_out,omitempty"`
	Duration string `json:"duration"`
	Late     bool   `json:"late"`
}

// RecentLeaveItem is one row of the caller's latest leave requests.
type RecentLeaveItem struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Status    string `json:"status"`
}

// UpcomingTimeOffItem is an approved or still-pending leave that has not
// ended yet.
type UpcomingTimeOffItem struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Duration  int    `json:"duration"`
}

// ChartResponse is the per-date attendance series for one range.
type ChartResponse struct {
	Range  string      `json:"range"`
	Labels []string    `json:"labels"`
	Series ChartSeries `json:"series"`
}

// ChartSeries holds the aligned per-date counts.
type ChartSeries struct {
	OnTime []int `json:"on_time"`
	Late   []int `json:"late"`
	Total  []int `json:"total"`
}
