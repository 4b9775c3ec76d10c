package service

import (
	"context"
	"math"

	"github.com/luvremak/db-coursework/internal/dal"
	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/model"
)

// TimeTrackingService keeps the append-only work ledger and derives the
// payroll-style reports from it.
type TimeTrackingService struct {
	entries *dal.TimeEntryDAL
}

func NewTimeTrackingService(entries *dal.TimeEntryDAL) *TimeTrackingService {
	return &TimeTrackingService{entries: entries}
}

// CreateTimeEntry performs no authorization: the presentation layer
// restricts logging to the task's assignee and validates the duration.
func (s *TimeTrackingService) CreateTimeEntry(ctx context.Context, taskID, employeeID, durationMinutes int64) (model.TimeTrackingEntry, error) {
	entry, err := s.entries.CreateAndGet(ctx, model.TimeTrackingEntry{
		TaskID:          taskID,
		EmployeeID:      employeeID,
		DurationMinutes: durationMinutes,
	})
	if err != nil {
		return model.TimeTrackingEntry{}, err
	}
	logger.Info(ctx, "time_entry.created", "id", entry.ID, "task_id", taskID, "employee_id", employeeID, "minutes", durationMinutes)
	return entry, nil
}

func (s *TimeTrackingService) GetTotalMinutesByTaskAndEmployee(ctx context.Context, taskID, employeeID int64) (int64, error) {
	return s.entries.TotalMinutesByTaskAndEmployee(ctx, taskID, employeeID)
}

// GetProjectStatsForCompany aggregates hours and money per project over
// every entry under the company, both rounded to 2 decimals.
func (s *TimeTrackingService) GetProjectStatsForCompany(ctx context.Context, companyID int64) ([]model.ProjectStat, error) {
	stats, err := s.entries.ProjectUsageForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for i := range stats {
		stats[i].TotalHoursSpent = round2(stats[i].TotalHoursSpent)
		stats[i].TotalMoneySpent = round2(stats[i].TotalMoneySpent)
	}
	return stats, nil
}

// GetEmployeeStatsForCompany returns one row per time entry joined
// across task, project and employee; salary = hours x rate, rounded to
// 2 decimals.
func (s *TimeTrackingService) GetEmployeeStatsForCompany(ctx context.Context, companyID int64) ([]model.EmployeeStatEntry, error) {
	usage, err := s.entries.EmployeeUsageForCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	stats := make([]model.EmployeeStatEntry, 0, len(usage))
	for _, u := range usage {
		stats = append(stats, model.EmployeeStatEntry{
			CompanyCode:         u.CompanyCode,
			ProjectCode:         u.ProjectCode,
			TaskCode:            u.TaskCode,
			TaskName:            u.TaskName,
			EmployeeDisplayName: u.EmployeeDisplayName,
			CreatedAt:           u.CreatedAt,
			DurationMinutes:     u.DurationMinutes,
			Salary:              round2(float64(u.DurationMinutes) / 60.0 * u.SalaryPerHour),
		})
	}
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
