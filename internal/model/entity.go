package model

import "time"

// Entities are persisted through the dal package, which works on loosely
// typed rows; the gorm tags here only drive migration (tables, indexes,
// foreign keys with cascade).

type Company struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Code      string `gorm:"size:3;not null;uniqueIndex:uk_company_code" json:"code"`
	OwnerTgID int64  `gorm:"not null;index:idx_company_owner_tg_id" json:"owner_tg_id"`
}

type Project struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CompanyID int64     `gorm:"not null;index:idx_project_company_id" json:"company_id"`
	Name      string    `gorm:"not null" json:"name"`
	Code      string    `gorm:"size:3;not null;uniqueIndex:uk_project_code" json:"code"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Company Company `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

type Employee struct {
	ID            int64     `gorm:"primaryKey" json:"id"`
	CompanyID     int64     `gorm:"not null;index:idx_employee_company_id;uniqueIndex:uk_employee_telegram_company,priority:2" json:"company_id"`
	TelegramID    int64     `gorm:"not null;uniqueIndex:uk_employee_telegram_company,priority:1" json:"telegram_id"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	IsAdmin       bool      `gorm:"not null;default:false" json:"is_admin"`
	SalaryPerHour float64   `gorm:"not null;default:0" json:"salary_per_hour"`
	DisplayName   string    `gorm:"not null" json:"display_name"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Company Company `gorm:"foreignKey:CompanyID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "new"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusCanceled   TaskStatus = "canceled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusReview, TaskStatusDone, TaskStatusCanceled:
		return true
	}
	return false
}

type Task struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	ProjectID      int64      `gorm:"not null;index:idx_task_project_id;uniqueIndex:uk_task_code_project,priority:2" json:"project_id"`
	Name           string     `gorm:"not null" json:"name"`
	Code           int64      `gorm:"not null;uniqueIndex:uk_task_code_project,priority:1" json:"code"`
	Description    string     `json:"description"`
	Deadline       *time.Time `gorm:"index:idx_task_deadline" json:"deadline"`
	AssigneeUserID int64      `gorm:"index:idx_task_assignee_user_id" json:"assignee_user_id"`
	Status         TaskStatus `gorm:"size:16;not null;default:new" json:"status"`
	CreatedAt      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// TimeTrackingEntry is append-only: the service surface never updates or
// deletes one.
type TimeTrackingEntry struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	TaskID          int64     `gorm:"not null;index:idx_time_entry_task_employee,priority:1" json:"task_id"`
	EmployeeID      int64     `gorm:"not null;index:idx_time_entry_task_employee,priority:2" json:"employee_id"`
	DurationMinutes int64     `gorm:"not null" json:"duration_minutes"`
	CreatedAt       time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_time_entry_created_at" json:"created_at"`

	Task     Task     `gorm:"foreignKey:TaskID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Employee Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

func (Company) TableName() string           { return "company" }
func (Project) TableName() string           { return "project" }
func (Employee) TableName() string          { return "employee" }
func (Task) TableName() string              { return "task" }
func (TimeTrackingEntry) TableName() string { return "time_tracking_entry" }
