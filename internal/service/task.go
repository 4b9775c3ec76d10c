package service

import (
	"context"
	"time"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/dal"
	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/model"
)

type TaskService struct {
	tasks     *dal.TaskDAL
	projects  *ProjectService
	employees *EmployeeService
	companies *CompanyService
}

func NewTaskService(tasks *dal.TaskDAL, projects *ProjectService, employees *EmployeeService, companies *CompanyService) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, employees: employees, companies: companies}
}

// VerifyUserHasAccessToProject resolves the project's company and applies
// the owner-or-admin rule; it is the gate for every task mutation.
func (s *TaskService) VerifyUserHasAccessToProject(ctx context.Context, projectID, userTgID int64) (bool, error) {
	project, err := s.projects.GetProjectDetails(ctx, projectID)
	if err != nil {
		return false, err
	}
	return s.employees.VerifyUserIsOwnerOrAdmin(ctx, project.CompanyID, userTgID)
}

// CreateTask assigns the next per-project code: max existing + 1,
// starting at 1. Statuses always start at new.
func (s *TaskService) CreateTask(ctx context.Context, projectID int64, name, description string, deadline *time.Time, assigneeUserID, userTgID int64) (model.Task, error) {
	if err := s.requireProjectAccess(ctx, projectID, userTgID); err != nil {
		return model.Task{}, err
	}

	code, err := s.tasks.NextCodeForProject(ctx, projectID)
	if err != nil {
		return model.Task{}, err
	}

	task, err := s.tasks.CreateAndGet(ctx, model.Task{
		ProjectID:      projectID,
		Name:           name,
		Code:           code,
		Description:    description,
		Deadline:       deadline,
		AssigneeUserID: assigneeUserID,
		Status:         model.TaskStatusNew,
	})
	if err != nil {
		return model.Task{}, err
	}
	logger.Info(ctx, "task.created", "id", task.ID, "project_id", projectID, "code", code, "by", userTgID)
	return task, nil
}

func (s *TaskService) EditName(ctx context.Context, taskID int64, name string, userTgID int64) (model.Task, error) {
	return s.mutate(ctx, taskID, userTgID, func(t *model.Task) { t.Name = name })
}

func (s *TaskService) EditDescription(ctx context.Context, taskID int64, description string, userTgID int64) (model.Task, error) {
	return s.mutate(ctx, taskID, userTgID, func(t *model.Task) { t.Description = description })
}

func (s *TaskService) SetDeadline(ctx context.Context, taskID int64, deadline *time.Time, userTgID int64) (model.Task, error) {
	return s.mutate(ctx, taskID, userTgID, func(t *model.Task) { t.Deadline = deadline })
}

func (s *TaskService) AssignToUser(ctx context.Context, taskID, assigneeUserID, userTgID int64) (model.Task, error) {
	return s.mutate(ctx, taskID, userTgID, func(t *model.Task) { t.AssigneeUserID = assigneeUserID })
}

// UpdateStatus does not enforce transition legality; any authorized
// caller may move a task to any status.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID int64, status model.TaskStatus, userTgID int64) (model.Task, error) {
	return s.mutate(ctx, taskID, userTgID, func(t *model.Task) { t.Status = status })
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, userTgID int64) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if err := s.requireProjectAccess(ctx, task.ProjectID, userTgID); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	logger.Info(ctx, "task.deleted", "id", taskID, "by", userTgID)
	return nil
}

func (s *TaskService) GetMyTasks(ctx context.Context, assigneeUserID int64, p model.PaginationParams) (model.Page[model.Task], error) {
	return s.tasks.GetByAssignee(ctx, assigneeUserID, p)
}

func (s *TaskService) GetTasks(ctx context.Context, projectID int64, p model.PaginationParams) (model.Page[model.Task], error) {
	return s.tasks.GetByProjectID(ctx, projectID, p)
}

func (s *TaskService) GetTaskDetails(ctx context.Context, taskID int64) (model.Task, error) {
	return s.tasks.GetByID(ctx, taskID)
}

// GetSoonDeadlines returns tasks due within the next days days (7 by
// convention), ascending by deadline. Past deadlines are excluded.
func (s *TaskService) GetSoonDeadlines(ctx context.Context, days int) ([]model.Task, error) {
	now := time.Now()
	return s.tasks.GetWithDeadlineBetween(ctx, now, now.AddDate(0, 0, days))
}

// GetTaskByFullCode resolves company code -> project code -> task code,
// failing with NotFound at the first link that does not resolve.
func (s *TaskService) GetTaskByFullCode(ctx context.Context, companyCode, projectCode string, taskCode int64) (model.Task, error) {
	company, err := s.companies.GetCompanyByCode(ctx, companyCode)
	if apperr.IsKind(err, apperr.KindNotFound) {
		return model.Task{}, apperr.NotFoundf("company", "company %q not found", companyCode)
	}
	if err != nil {
		return model.Task{}, err
	}

	project, err := s.projects.GetProjectByCode(ctx, projectCode)
	if apperr.IsKind(err, apperr.KindNotFound) {
		return model.Task{}, apperr.NotFoundf("project", "project %q not found", projectCode)
	}
	if err != nil {
		return model.Task{}, err
	}
	if project.CompanyID != company.ID {
		return model.Task{}, apperr.NotFoundf("project", "project %q not found in company %q", projectCode, companyCode)
	}

	task, err := s.tasks.GetByCodeAndProjectID(ctx, taskCode, project.ID)
	if apperr.IsKind(err, apperr.KindNotFound) {
		return model.Task{}, apperr.NotFoundf("task", "task %s-%s-%d not found", companyCode, projectCode, taskCode)
	}
	return task, err
}

func (s *TaskService) requireProjectAccess(ctx context.Context, projectID, userTgID int64) error {
	allowed, err := s.VerifyUserHasAccessToProject(ctx, projectID, userTgID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperr.AccessDenied("task", "no access to this project")
	}
	return nil
}

func (s *TaskService) mutate(ctx context.Context, taskID, userTgID int64, apply func(*model.Task)) (model.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return model.Task{}, err
	}
	if err := s.requireProjectAccess(ctx, task.ProjectID, userTgID); err != nil {
		return model.Task{}, err
	}
	apply(&task)
	return s.tasks.UpdateAndGet(ctx, task)
}
