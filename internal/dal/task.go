package dal

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/luvremak/db-coursework/internal/model"
)

type taskSerializer struct{}

func (taskSerializer) Serialize(t model.Task) DTO {
	row := DTO{
		"project_id":       t.ProjectID,
		"name":             t.Name,
		"code":             t.Code,
		"description":      t.Description,
		"assignee_user_id": t.AssigneeUserID,
		"status":           string(t.Status),
	}
	if t.ID != 0 {
		row["id"] = t.ID
	}
	if t.Deadline != nil {
		row["deadline"] = *t.Deadline
	} else {
		row["deadline"] = nil
	}
	if !t.CreatedAt.IsZero() {
		row["created_at"] = t.CreatedAt
	}
	return row
}

func (taskSerializer) Deserialize(row DTO) (model.Task, error) {
	r := readRow(row)
	t := model.Task{
		ID:             r.Int64("id"),
		ProjectID:      r.Int64("project_id"),
		Name:           r.String("name"),
		Code:           r.Int64("code"),
		Description:    r.String("description"),
		Deadline:       r.TimePtr("deadline"),
		AssigneeUserID: r.Int64("assignee_user_id"),
		Status:         model.TaskStatus(r.String("status")),
		CreatedAt:      r.Time("created_at"),
	}
	return t, r.Err()
}

type TaskDAL struct {
	*Repo[int64, model.Task]
	db *gorm.DB
}

func NewTaskDAL(db *gorm.DB) (*TaskDAL, error) {
	crud, err := NewCrud[int64](db, &model.Task{})
	if err != nil {
		return nil, err
	}
	return &TaskDAL{Repo: NewRepo(crud, taskSerializer{}, "task"), db: db}, nil
}

// NextCodeForProject returns max(code)+1 within the project, 1 when the
// project has no tasks. Codes are never reused after deletion.
func (d *TaskDAL) NextCodeForProject(ctx context.Context, projectID int64) (int64, error) {
	var next int64
	err := d.db.WithContext(ctx).
		Table("task").
		Select("COALESCE(MAX(code), 0) + 1").
		Where("project_id = ?", projectID).
		Scan(&next).Error
	if err != nil {
		return 0, fmt.Errorf("next task code for project %d: %w", projectID, err)
	}
	return next, nil
}

func (d *TaskDAL) GetByCodeAndProjectID(ctx context.Context, code, projectID int64) (model.Task, error) {
	return d.First(ctx, DTO{"code": code, "project_id": projectID})
}

func (d *TaskDAL) GetByAssignee(ctx context.Context, assigneeUserID int64, p model.PaginationParams) (model.Page[model.Task], error) {
	return d.GetPage(ctx, DTO{"assignee_user_id": assigneeUserID}, p)
}

func (d *TaskDAL) GetByProjectID(ctx context.Context, projectID int64, p model.PaginationParams) (model.Page[model.Task], error) {
	return d.GetPage(ctx, DTO{"project_id": projectID}, p)
}

// GetWithDeadlineBetween returns tasks whose deadline falls in
// [from, to], ascending by deadline.
func (d *TaskDAL) GetWithDeadlineBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	var rows []DTO
	err := d.db.WithContext(ctx).
		Table("task").
		Where("deadline IS NOT NULL AND deadline >= ? AND deadline <= ?", from, to).
		Order("deadline ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("tasks with deadline between: %w", err)
	}
	return DeserializeAll[model.Task](taskSerializer{}, rows)
}
