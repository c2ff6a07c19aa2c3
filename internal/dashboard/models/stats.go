package models

import (
	attendanceModel "hrms/internal/attendance/models"
)

// DepartmentCount is one entry of the department distribution.
type DepartmentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecentEntry is an attendance record joined with its employee's name at
// query time. The cascade invariant guarantees the join never dangles.
type RecentEntry struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	Date         string                 `json:"date"`
	Status       attendanceModel.Status `json:"status"`
}

// Stats is the aggregate dashboard snapshot, derived entirely from current
// store state.
type Stats struct {
	TotalEmployees   int               `json:"total_employees"`
	TotalAttendance  int               `json:"total_attendance"`
	PresentToday     int               `json:"present_today"`
	AbsentToday      int               `json:"absent_today"`
	Departments      []DepartmentCount `json:"departments"`
	RecentAttendance []RecentEntry     `json:"recent_attendance"`
}
