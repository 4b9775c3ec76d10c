package dal

import (
	"context"

	"gorm.io/gorm"

	"github.com/luvremak/db-coursework/internal/model"
)

type employeeSerializer struct{}

func (employeeSerializer) Serialize(e model.Employee) DTO {
	row := DTO{
		"company_id":      e.CompanyID,
		"telegram_id":     e.TelegramID,
		"is_active":       e.IsActive,
		"is_admin":        e.IsAdmin,
		"salary_per_hour": e.SalaryPerHour,
		"display_name":    e.DisplayName,
	}
	if e.ID != 0 {
		row["id"] = e.ID
	}
	if !e.CreatedAt.IsZero() {
		row["created_at"] = e.CreatedAt
	}
	return row
}

func (employeeSerializer) Deserialize(row DTO) (model.Employee, error) {
	r := readRow(row)
	e := model.Employee{
		ID:            r.Int64("id"),
		CompanyID:     r.Int64("company_id"),
		TelegramID:    r.Int64("telegram_id"),
		IsActive:      r.Bool("is_active"),
		IsAdmin:       r.Bool("is_admin"),
		SalaryPerHour: r.Float64("salary_per_hour"),
		DisplayName:   r.String("display_name"),
		CreatedAt:     r.Time("created_at"),
	}
	return e, r.Err()
}

type EmployeeDAL struct {
	*Repo[int64, model.Employee]
}

func NewEmployeeDAL(db *gorm.DB) (*EmployeeDAL, error) {
	crud, err := NewCrud[int64](db, &model.Employee{})
	if err != nil {
		return nil, err
	}
	return &EmployeeDAL{Repo: NewRepo(crud, employeeSerializer{}, "employee")}, nil
}

// GetByTelegramIDAndCompanyID returns nil without error when no
// membership row exists; one person has at most one row per company.
func (d *EmployeeDAL) GetByTelegramIDAndCompanyID(ctx context.Context, telegramID, companyID int64) (*model.Employee, error) {
	rows, err := d.Crud().List(ctx, DTO{"telegram_id": telegramID, "company_id": companyID}, model.PaginationParams{Page: 1, PageSize: 1, OrderBy: "id", Ascending: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	e, err := employeeSerializer{}.Deserialize(rows[0])
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (d *EmployeeDAL) GetByCompanyID(ctx context.Context, companyID int64, p model.PaginationParams) (model.Page[model.Employee], error) {
	return d.GetPage(ctx, DTO{"company_id": companyID}, p)
}
