package model

import "time"

// ProjectStat aggregates every time entry under one project of a company.
// Hours and money are rounded to 2 decimals.
type ProjectStat struct {
	ProjectCode     string  `json:"project_code"`
	TotalHoursSpent float64 `json:"total_hours_spent"`
	TotalMoneySpent float64 `json:"total_money_spent"`
}

// EmployeeStatEntry is one time entry joined across task, project, company
// and employee for payroll-style reporting.
type EmployeeStatEntry struct {
	CompanyCode         string    `json:"company_code"`
	ProjectCode         string    `json:"project_code"`
	TaskCode            int64     `json:"task_code"`
	TaskName            string    `json:"task_name"`
	EmployeeDisplayName string    `json:"employee_display_name"`
	CreatedAt           time.Time `json:"created_at"`
	DurationMinutes     int64     `json:"duration_minutes"`
	Salary              float64   `json:"salary"`
}
