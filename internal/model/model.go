package model

import "time"

// Request and response payloads for the HTTP surface. The acting user id
// always comes from the auth token, never from the body.

type TokenRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

type CreateProjectRequest struct {
	CompanyID int64  `json:"company_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

type CreateEmployeeRequest struct {
	CompanyID     int64   `json:"company_id" binding:"required"`
	TelegramID    int64   `json:"telegram_id" binding:"required"`
	DisplayName   string  `json:"display_name" binding:"required"`
	SalaryPerHour float64 `json:"salary_per_hour" binding:"gte=0"`
	IsAdmin       bool    `json:"is_admin"`
}

type SetDisplayNameRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type SetSalaryRequest struct {
	SalaryPerHour float64 `json:"salary_per_hour" binding:"gte=0"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

type CreateTaskRequest struct {
	ProjectID      int64      `json:"project_id" binding:"required"`
	Name           string     `json:"name" binding:"required"`
	Description    string     `json:"description"`
	Deadline       *time.Time `json:"deadline"`
	AssigneeUserID int64      `json:"assignee_user_id"`
}

type SetTaskNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type SetTaskDescriptionRequest struct {
	Description string `json:"description"`
}

type SetTaskDeadlineRequest struct {
	Deadline *time.Time `json:"deadline" binding:"required"`
}

type AssignTaskRequest struct {
	AssigneeUserID int64 `json:"assignee_user_id" binding:"required"`
}

type SetTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateTimeEntryRequest struct {
	TaskID          int64 `json:"task_id" binding:"required"`
	EmployeeID      int64 `json:"employee_id" binding:"required"`
	DurationMinutes int64 `json:"duration_minutes" binding:"required,gt=0"`
}
