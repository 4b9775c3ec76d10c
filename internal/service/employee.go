package service

import (
	"context"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/dal"
	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/model"
)

type EmployeeService struct {
	employees *dal.EmployeeDAL
	companies *CompanyService
}

func NewEmployeeService(employees *dal.EmployeeDAL, companies *CompanyService) *EmployeeService {
	return &EmployeeService{employees: employees, companies: companies}
}

// VerifyUserIsOwnerOrAdmin is the single authorization primitive behind
// employee, project and task mutation: company owner, or an active admin
// employee of the company.
func (s *EmployeeService) VerifyUserIsOwnerOrAdmin(ctx context.Context, companyID, userTgID int64) (bool, error) {
	isOwner, err := s.companies.VerifyUserIsOwner(ctx, companyID, userTgID)
	if err != nil {
		return false, err
	}
	if isOwner {
		return true, nil
	}

	employee, err := s.employees.GetByTelegramIDAndCompanyID(ctx, userTgID, companyID)
	if err != nil {
		return false, err
	}
	if employee == nil {
		return false, nil
	}
	return employee.IsAdmin && employee.IsActive, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, companyID, telegramID int64, displayName string, salaryPerHour float64, isAdmin bool, userTgID int64) (model.Employee, error) {
	allowed, err := s.VerifyUserIsOwnerOrAdmin(ctx, companyID, userTgID)
	if err != nil {
		return model.Employee{}, err
	}
	if !allowed {
		return model.Employee{}, apperr.AccessDenied("employee", "only the company owner or an admin can add employees")
	}

	employee, err := s.employees.CreateAndGet(ctx, model.Employee{
		CompanyID:     companyID,
		TelegramID:    telegramID,
		DisplayName:   displayName,
		SalaryPerHour: salaryPerHour,
		IsAdmin:       isAdmin,
		IsActive:      true,
	})
	if err != nil {
		return model.Employee{}, err
	}
	logger.Info(ctx, "employee.created", "id", employee.ID, "company_id", companyID, "telegram_id", telegramID, "by", userTgID)
	return employee, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID, userTgID int64) error {
	employee, err := s.requireManageable(ctx, employeeID, userTgID)
	if err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, employee.ID); err != nil {
		return err
	}
	logger.Info(ctx, "employee.deleted", "id", employeeID, "by", userTgID)
	return nil
}

func (s *EmployeeService) SetDisplayName(ctx context.Context, employeeID int64, displayName string, userTgID int64) (model.Employee, error) {
	employee, err := s.requireManageable(ctx, employeeID, userTgID)
	if err != nil {
		return model.Employee{}, err
	}
	employee.DisplayName = displayName
	return s.employees.UpdateAndGet(ctx, *employee)
}

func (s *EmployeeService) SetSalaryPerHour(ctx context.Context, employeeID int64, salaryPerHour float64, userTgID int64) (model.Employee, error) {
	employee, err := s.requireManageable(ctx, employeeID, userTgID)
	if err != nil {
		return model.Employee{}, err
	}
	employee.SalaryPerHour = salaryPerHour
	return s.employees.UpdateAndGet(ctx, *employee)
}

func (s *EmployeeService) SetIsActive(ctx context.Context, employeeID int64, isActive bool, userTgID int64) (model.Employee, error) {
	employee, err := s.requireManageable(ctx, employeeID, userTgID)
	if err != nil {
		return model.Employee{}, err
	}
	employee.IsActive = isActive
	return s.employees.UpdateAndGet(ctx, *employee)
}

func (s *EmployeeService) GetEmployees(ctx context.Context, companyID int64, p model.PaginationParams) (model.Page[model.Employee], error) {
	return s.employees.GetByCompanyID(ctx, companyID, p)
}

func (s *EmployeeService) GetEmployeeDetails(ctx context.Context, employeeID int64) (model.Employee, error) {
	return s.employees.GetByID(ctx, employeeID)
}

func (s *EmployeeService) GetEmployeeByTelegramIDAndCompanyID(ctx context.Context, telegramID, companyID int64) (*model.Employee, error) {
	return s.employees.GetByTelegramIDAndCompanyID(ctx, telegramID, companyID)
}

// requireManageable loads the target employee and re-checks the
// owner-or-admin rule against that employee's company. Any owner or
// active admin may modify any employee, admins included.
func (s *EmployeeService) requireManageable(ctx context.Context, employeeID, userTgID int64) (*model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.VerifyUserIsOwnerOrAdmin(ctx, employee.CompanyID, userTgID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperr.AccessDenied("employee", "only the company owner or an admin can manage employees")
	}
	return &employee, nil
}
