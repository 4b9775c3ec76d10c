package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/model"
)

// TestCompanyLifecycle walks a company from creation through staffing,
// project setup, task work and time reporting.
func TestCompanyLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	company, err := e.companies.CreateCompany(ctx, "Acme", "acm", ownerTg)
	require.NoError(t, err)
	assert.Equal(t, "ACM", company.Code)

	admin, err := e.employees.CreateEmployee(ctx, company.ID, adminTg, "Alice", 25, true, ownerTg)
	require.NoError(t, err)
	worker, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 20, false, adminTg)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.False(t, worker.IsAdmin)

	// admins staff the company but only the owner shapes the project list
	_, err = e.projects.CreateProject(ctx, company.ID, "Website", "WEB", adminTg)
	assert.True(t, apperr.IsKind(err, apperr.KindAccessDenied))

	project, err := e.projects.CreateProject(ctx, company.ID, "Website", "WEB", ownerTg)
	require.NoError(t, err)

	design, err := e.tasks.CreateTask(ctx, project.ID, "Design", "mockups", nil, memberTg, adminTg)
	require.NoError(t, err)
	build, err := e.tasks.CreateTask(ctx, project.ID, "Build", "", nil, memberTg, ownerTg)
	require.NoError(t, err)
	assert.Equal(t, int64(1), design.Code)
	assert.Equal(t, int64(2), build.Code)

	found, err := e.tasks.GetTaskByFullCode(ctx, "ACM", "WEB", 1)
	require.NoError(t, err)
	assert.Equal(t, design.ID, found.ID)

	_, err = e.tasks.UpdateStatus(ctx, design.ID, model.TaskStatusInProgress, memberTg)
	assert.True(t, apperr.IsKind(err, apperr.KindAccessDenied))
	_, err = e.tasks.UpdateStatus(ctx, design.ID, model.TaskStatusInProgress, adminTg)
	require.NoError(t, err)

	_, err = e.tracking.CreateTimeEntry(ctx, design.ID, worker.ID, 60)
	require.NoError(t, err)
	_, err = e.tracking.CreateTimeEntry(ctx, design.ID, worker.ID, 30)
	require.NoError(t, err)

	total, err := e.tracking.GetTotalMinutesByTaskAndEmployee(ctx, design.ID, worker.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90), total)

	stats, err := e.tracking.GetProjectStatsForCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "WEB", stats[0].ProjectCode)
	assert.Equal(t, 1.5, stats[0].TotalHoursSpent)
	assert.Equal(t, 30.0, stats[0].TotalMoneySpent)

	mine, err := e.tasks.GetMyTasks(ctx, memberTg, model.DefaultPagination())
	require.NoError(t, err)
	assert.Equal(t, int64(2), mine.Total)
}
