package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/model"
)

const (
	ownerTg    = int64(1)
	adminTg    = int64(2)
	memberTg   = int64(3)
	outsiderTg = int64(99)
)

func setupCompany(t *testing.T, e *env) model.Company {
	t.Helper()
	company, err := e.companies.CreateCompany(context.Background(), "Acme", "ACM", ownerTg)
	require.NoError(t, err)
	return company
}

func TestVerifyUserIsOwnerOrAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	admin, err := e.employees.CreateEmployee(ctx, company.ID, adminTg, "Admin", 10, true, ownerTg)
	require.NoError(t, err)
	_, err = e.employees.CreateEmployee(ctx, company.ID, memberTg, "Member", 10, false, ownerTg)
	require.NoError(t, err)

	check := func(tgID int64, want bool) {
		t.Helper()
		ok, err := e.employees.VerifyUserIsOwnerOrAdmin(ctx, company.ID, tgID)
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}

	check(ownerTg, true)
	check(adminTg, true)
	check(memberTg, false)
	check(outsiderTg, false)

	// deactivated admins lose their rights
	_, err = e.employees.SetIsActive(ctx, admin.ID, false, ownerTg)
	require.NoError(t, err)
	check(adminTg, false)
}

func TestCreateEmployeeAuthorization(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	_, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Member", 10, false, outsiderTg)
	assert.True(t, apperr.IsKind(err, apperr.KindAccessDenied))

	// an active admin may add employees
	_, err = e.employees.CreateEmployee(ctx, company.ID, adminTg, "Admin", 10, true, ownerTg)
	require.NoError(t, err)
	employee, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Member", 10, false, adminTg)
	require.NoError(t, err)
	assert.True(t, employee.IsActive)
	assert.False(t, employee.IsAdmin)
}

func TestCreateEmployeeDuplicateMembership(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	_, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Member", 10, false, ownerTg)
	require.NoError(t, err)

	_, err = e.employees.CreateEmployee(ctx, company.ID, memberTg, "Member again", 12, false, ownerTg)
	assert.True(t, apperr.IsKind(err, apperr.KindAlreadyExists))
}

func TestEmployeeMutators(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	employee, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 10, false, ownerTg)
	require.NoError(t, err)

	updated, err := e.employees.SetDisplayName(ctx, employee.ID, "Robert", ownerTg)
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.DisplayName)

	updated, err = e.employees.SetSalaryPerHour(ctx, employee.ID, 42.5, ownerTg)
	require.NoError(t, err)
	assert.Equal(t, 42.5, updated.SalaryPerHour)

	updated, err = e.employees.SetIsActive(ctx, employee.ID, false, ownerTg)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	// the other fields survive the targeted updates
	assert.Equal(t, "Robert", updated.DisplayName)
	assert.Equal(t, 42.5, updated.SalaryPerHour)

	_, err = e.employees.SetDisplayName(ctx, employee.ID, "Eve", outsiderTg)
	assert.True(t, apperr.IsKind(err, apperr.KindAccessDenied))

	_, err = e.employees.SetDisplayName(ctx, 999, "Eve", ownerTg)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestEmployeeNoOpUpdate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	employee, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 10, false, ownerTg)
	require.NoError(t, err)

	// setting the current value again is not a missing row
	updated, err := e.employees.SetDisplayName(ctx, employee.ID, "Bob", ownerTg)
	require.NoError(t, err)
	assert.Equal(t, "Bob", updated.DisplayName)

	updated, err = e.employees.SetIsActive(ctx, employee.ID, true, ownerTg)
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestAdminCanManageOtherAdmins(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	first, err := e.employees.CreateEmployee(ctx, company.ID, adminTg, "Admin A", 10, true, ownerTg)
	require.NoError(t, err)
	second, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Admin B", 10, true, ownerTg)
	require.NoError(t, err)

	// no owner-only tier: one admin may deactivate another
	updated, err := e.employees.SetIsActive(ctx, first.ID, false, memberTg)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	require.NoError(t, e.employees.DeleteEmployee(ctx, second.ID, ownerTg))
	_, err = e.employees.GetEmployeeDetails(ctx, second.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetEmployeesPagination(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	for tg := int64(10); tg < 15; tg++ {
		_, err := e.employees.CreateEmployee(ctx, company.ID, tg, "E", 10, false, ownerTg)
		require.NoError(t, err)
	}

	page, err := e.employees.GetEmployees(ctx, company.ID, model.NewPagination(1, 3, "id", true))
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Data, 3)
}

func TestGetEmployeeByTelegramIDAndCompanyID(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	company := setupCompany(t, e)

	created, err := e.employees.CreateEmployee(ctx, company.ID, memberTg, "Bob", 10, false, ownerTg)
	require.NoError(t, err)

	found, err := e.employees.GetEmployeeByTelegramIDAndCompanyID(ctx, memberTg, company.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := e.employees.GetEmployeeByTelegramIDAndCompanyID(ctx, outsiderTg, company.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
