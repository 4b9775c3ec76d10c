package service_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/luvremak/db-coursework/internal/dal"
	"github.com/luvremak/db-coursework/internal/db"
	"github.com/luvremak/db-coursework/internal/service"
)

// env wires the full service graph over an in-memory database, with the
// DALs exposed for tests that need to bypass the services.
type env struct {
	companies *service.CompanyService
	employees *service.EmployeeService
	projects  *service.ProjectService
	tasks     *service.TaskService
	tracking  *service.TimeTrackingService

	companyDAL  *dal.CompanyDAL
	employeeDAL *dal.EmployeeDAL
	projectDAL  *dal.ProjectDAL
	taskDAL     *dal.TaskDAL
	entryDAL    *dal.TimeEntryDAL
}

func newEnv(t *testing.T) *env {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))

	e := &env{}
	e.companyDAL, err = dal.NewCompanyDAL(gdb)
	require.NoError(t, err)
	e.projectDAL, err = dal.NewProjectDAL(gdb)
	require.NoError(t, err)
	e.employeeDAL, err = dal.NewEmployeeDAL(gdb)
	require.NoError(t, err)
	e.taskDAL, err = dal.NewTaskDAL(gdb)
	require.NoError(t, err)
	e.entryDAL, err = dal.NewTimeEntryDAL(gdb)
	require.NoError(t, err)

	e.companies = service.NewCompanyService(e.companyDAL)
	e.employees = service.NewEmployeeService(e.employeeDAL, e.companies)
	e.projects = service.NewProjectService(e.projectDAL, e.companies)
	e.tasks = service.NewTaskService(e.taskDAL, e.projects, e.employees, e.companies)
	e.tracking = service.NewTimeTrackingService(e.entryDAL)
	return e
}
