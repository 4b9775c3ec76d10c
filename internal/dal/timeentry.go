package dal

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/luvremak/db-coursework/internal/model"
)

type timeEntrySerializer struct{}

func (timeEntrySerializer) Serialize(e model.TimeTrackingEntry) DTO {
	row := DTO{
		"task_id":          e.TaskID,
		"employee_id":      e.EmployeeID,
		"duration_minutes": e.DurationMinutes,
	}
	if e.ID != 0 {
		row["id"] = e.ID
	}
	if !e.CreatedAt.IsZero() {
		row["created_at"] = e.CreatedAt
	}
	return row
}

func (timeEntrySerializer) Deserialize(row DTO) (model.TimeTrackingEntry, error) {
	r := readRow(row)
	e := model.TimeTrackingEntry{
		ID:              r.Int64("id"),
		TaskID:          r.Int64("task_id"),
		EmployeeID:      r.Int64("employee_id"),
		DurationMinutes: r.Int64("duration_minutes"),
		CreatedAt:       r.Time("created_at"),
	}
	return e, r.Err()
}

type TimeEntryDAL struct {
	*Repo[int64, model.TimeTrackingEntry]
	db *gorm.DB
}

func NewTimeEntryDAL(db *gorm.DB) (*TimeEntryDAL, error) {
	crud, err := NewCrud[int64](db, &model.TimeTrackingEntry{})
	if err != nil {
		return nil, err
	}
	return &TimeEntryDAL{Repo: NewRepo(crud, timeEntrySerializer{}, "time tracking entry"), db: db}, nil
}

func (d *TimeEntryDAL) TotalMinutesByTaskAndEmployee(ctx context.Context, taskID, employeeID int64) (int64, error) {
	var total int64
	err := d.db.WithContext(ctx).
		Table("time_tracking_entry").
		Select("COALESCE(SUM(duration_minutes), 0)").
		Where("task_id = ? AND employee_id = ?", taskID, employeeID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum minutes for task %d employee %d: %w", taskID, employeeID, err)
	}
	return total, nil
}

type projectUsageRow struct {
	ProjectCode  string  `gorm:"column:project_code"`
	TotalMinutes float64 `gorm:"column:total_minutes"`
	TotalMoney   float64 `gorm:"column:total_money"`
}

// ProjectUsageForCompany accumulates raw minutes and money per project
// over every time entry reachable from the company; rounding is the
// caller's concern.
func (d *TimeEntryDAL) ProjectUsageForCompany(ctx context.Context, companyID int64) ([]model.ProjectStat, error) {
	var rows []projectUsageRow
	err := d.db.WithContext(ctx).
		Table("time_tracking_entry AS tte").
		Select("project.code AS project_code, " +
			"SUM(tte.duration_minutes) AS total_minutes, " +
			"SUM(tte.duration_minutes / 60.0 * employee.salary_per_hour) AS total_money").
		Joins("JOIN task ON task.id = tte.task_id").
		Joins("JOIN project ON project.id = task.project_id").
		Joins("JOIN employee ON employee.id = tte.employee_id").
		Where("project.company_id = ?", companyID).
		Group("project.code").
		Order("project.code ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("project usage for company %d: %w", companyID, err)
	}

	stats := make([]model.ProjectStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, model.ProjectStat{
			ProjectCode:     row.ProjectCode,
			TotalHoursSpent: row.TotalMinutes / 60.0,
			TotalMoneySpent: row.TotalMoney,
		})
	}
	return stats, nil
}

type employeeUsageRow struct {
	CompanyCode         string    `gorm:"column:company_code"`
	ProjectCode         string    `gorm:"column:project_code"`
	TaskCode            int64     `gorm:"column:task_code"`
	TaskName            string    `gorm:"column:task_name"`
	EmployeeDisplayName string    `gorm:"column:employee_display_name"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	DurationMinutes     int64     `gorm:"column:duration_minutes"`
	SalaryPerHour       float64   `gorm:"column:salary_per_hour"`
}

// EmployeeUsageEntry is one time entry joined across the company chain,
// still carrying the raw hourly rate.
type EmployeeUsageEntry struct {
	CompanyCode         string
	ProjectCode         string
	TaskCode            int64
	TaskName            string
	EmployeeDisplayName string
	CreatedAt           time.Time
	DurationMinutes     int64
	SalaryPerHour       float64
}

func (d *TimeEntryDAL) EmployeeUsageForCompany(ctx context.Context, companyID int64) ([]EmployeeUsageEntry, error) {
	var rows []employeeUsageRow
	err := d.db.WithContext(ctx).
		Table("time_tracking_entry AS tte").
		Select("company.code AS company_code, project.code AS project_code, " +
			"task.code AS task_code, task.name AS task_name, " +
			"employee.display_name AS employee_display_name, " +
			"tte.created_at AS created_at, tte.duration_minutes AS duration_minutes, " +
			"employee.salary_per_hour AS salary_per_hour").
		Joins("JOIN task ON task.id = tte.task_id").
		Joins("JOIN project ON project.id = task.project_id").
		Joins("JOIN company ON company.id = project.company_id").
		Joins("JOIN employee ON employee.id = tte.employee_id").
		Where("project.company_id = ?", companyID).
		Order("tte.created_at ASC, tte.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("employee usage for company %d: %w", companyID, err)
	}

	entries := make([]EmployeeUsageEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, EmployeeUsageEntry(row))
	}
	return entries, nil
}
