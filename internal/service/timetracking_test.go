package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luvremak/db-coursework/internal/model"
)

func TestCreateTimeEntryAndTotal(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, project := setupProject(t, e)

	employee, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 10, false, ownerTg)
	require.NoError(t, err)
	task, err := e.tasks.CreateTask(ctx, project.ID, "Design", "", nil, memberTg, ownerTg)
	require.NoError(t, err)

	entry, err := e.tracking.CreateTimeEntry(ctx, task.ID, employee.ID, 60)
	require.NoError(t, err)
	assert.Greater(t, entry.ID, int64(0))
	assert.Equal(t, int64(60), entry.DurationMinutes)

	_, err = e.tracking.CreateTimeEntry(ctx, task.ID, employee.ID, 30)
	require.NoError(t, err)

	total, err := e.tracking.GetTotalMinutesByTaskAndEmployee(ctx, task.ID, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90), total)

	// no entries answers zero, not an error
	total, err = e.tracking.GetTotalMinutesByTaskAndEmployee(ctx, task.ID, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestProjectStatsRounding(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, project := setupProject(t, e)

	employee, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 10.50, false, ownerTg)
	require.NoError(t, err)
	task, err := e.tasks.CreateTask(ctx, project.ID, "Design", "", nil, memberTg, ownerTg)
	require.NoError(t, err)

	_, err = e.tracking.CreateTimeEntry(ctx, task.ID, employee.ID, 50)
	require.NoError(t, err)

	stats, err := e.tracking.GetProjectStatsForCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "WEB", stats[0].ProjectCode)
	// 50 minutes at 10.50/h
	assert.Equal(t, 0.83, stats[0].TotalHoursSpent)
	assert.Equal(t, 8.75, stats[0].TotalMoneySpent)
}

func TestProjectStatsSpanProjects(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, web := setupProject(t, e)
	api, err := e.projects.CreateProject(ctx, company.ID, "API", "API", ownerTg)
	require.NoError(t, err)

	employee, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 60, false, ownerTg)
	require.NoError(t, err)

	webTask, err := e.tasks.CreateTask(ctx, web.ID, "Design", "", nil, memberTg, ownerTg)
	require.NoError(t, err)
	apiTask, err := e.tasks.CreateTask(ctx, api.ID, "Endpoints", "", nil, memberTg, ownerTg)
	require.NoError(t, err)

	_, err = e.tracking.CreateTimeEntry(ctx, webTask.ID, employee.ID, 120)
	require.NoError(t, err)
	_, err = e.tracking.CreateTimeEntry(ctx, webTask.ID, employee.ID, 60)
	require.NoError(t, err)
	_, err = e.tracking.CreateTimeEntry(ctx, apiTask.ID, employee.ID, 30)
	require.NoError(t, err)

	stats, err := e.tracking.GetProjectStatsForCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byCode := map[string]model.ProjectStat{}
	for _, s := range stats {
		byCode[s.ProjectCode] = s
	}
	assert.Equal(t, 3.0, byCode["WEB"].TotalHoursSpent)
	assert.Equal(t, 180.0, byCode["WEB"].TotalMoneySpent)
	assert.Equal(t, 0.5, byCode["API"].TotalHoursSpent)
	assert.Equal(t, 30.0, byCode["API"].TotalMoneySpent)
}

func TestEmployeeStatsForCompany(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company, project := setupProject(t, e)

	employee, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 10.50, false, ownerTg)
	require.NoError(t, err)
	task, err := e.tasks.CreateTask(ctx, project.ID, "Design", "", nil, memberTg, ownerTg)
	require.NoError(t, err)

	_, err = e.tracking.CreateTimeEntry(ctx, task.ID, employee.ID, 50)
	require.NoError(t, err)
	_, err = e.tracking.CreateTimeEntry(ctx, task.ID, employee.ID, 60)
	require.NoError(t, err)

	stats, err := e.tracking.GetEmployeeStatsForCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	for _, s := range stats {
		assert.Equal(t, company.Code, s.CompanyCode)
		assert.Equal(t, project.Code, s.ProjectCode)
		assert.Equal(t, task.Code, s.TaskCode)
		assert.Equal(t, "Design", s.TaskName)
		assert.Equal(t, "Bob", s.EmployeeDisplayName)
		assert.False(t, s.CreatedAt.IsZero())
	}
	assert.Equal(t, int64(50), stats[0].DurationMinutes)
	assert.Equal(t, 8.75, stats[0].Salary)
	assert.Equal(t, int64(60), stats[1].DurationMinutes)
	assert.Equal(t, 10.50, stats[1].Salary)
}

func TestStatsEmptyCompany(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	stats, err := e.tracking.GetProjectStatsForCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Empty(t, stats)

	rows, err := e.tracking.GetEmployeeStatsForCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
