package dal

import (
	"context"

	"gorm.io/gorm"

	"github.com/luvremak/db-coursework/internal/model"
)

type projectSerializer struct{}

func (projectSerializer) Serialize(p model.Project) DTO {
	row := DTO{
		"company_id": p.CompanyID,
		"name":       p.Name,
		"code":       p.Code,
	}
	if p.ID != 0 {
		row["id"] = p.ID
	}
	if !p.CreatedAt.IsZero() {
		row["created_at"] = p.CreatedAt
	}
	return row
}

func (projectSerializer) Deserialize(row DTO) (model.Project, error) {
	r := readRow(row)
	p := model.Project{
		ID:        r.Int64("id"),
		CompanyID: r.Int64("company_id"),
		Name:      r.String("name"),
		Code:      r.String("code"),
		CreatedAt: r.Time("created_at"),
	}
	return p, r.Err()
}

type ProjectDAL struct {
	*Repo[int64, model.Project]
}

func NewProjectDAL(db *gorm.DB) (*ProjectDAL, error) {
	crud, err := NewCrud[int64](db, &model.Project{})
	if err != nil {
		return nil, err
	}
	return &ProjectDAL{Repo: NewRepo(crud, projectSerializer{}, "project")}, nil
}

func (d *ProjectDAL) GetByCode(ctx context.Context, code string) (model.Project, error) {
	return d.First(ctx, DTO{"code": code})
}

func (d *ProjectDAL) GetByCompanyID(ctx context.Context, companyID int64, p model.PaginationParams) (model.Page[model.Project], error) {
	return d.GetPage(ctx, DTO{"company_id": companyID}, p)
}
