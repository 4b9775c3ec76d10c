package dal

import (
	"context"

	"gorm.io/gorm"

	"github.com/luvremak/db-coursework/internal/model"
)

type companySerializer struct{}

func (companySerializer) Serialize(c model.Company) DTO {
	row := DTO{
		"name":        c.Name,
		"code":        c.Code,
		"owner_tg_id": c.OwnerTgID,
	}
	if c.ID != 0 {
		row["id"] = c.ID
	}
	return row
}

func (companySerializer) Deserialize(row DTO) (model.Company, error) {
	r := readRow(row)
	c := model.Company{
		ID:        r.Int64("id"),
		Name:      r.String("name"),
		Code:      r.String("code"),
		OwnerTgID: r.Int64("owner_tg_id"),
	}
	return c, r.Err()
}

type CompanyDAL struct {
	*Repo[int64, model.Company]
}

func NewCompanyDAL(db *gorm.DB) (*CompanyDAL, error) {
	crud, err := NewCrud[int64](db, &model.Company{})
	if err != nil {
		return nil, err
	}
	return &CompanyDAL{Repo: NewRepo(crud, companySerializer{}, "company")}, nil
}

func (d *CompanyDAL) GetByCode(ctx context.Context, code string) (model.Company, error) {
	return d.First(ctx, DTO{"code": code})
}

func (d *CompanyDAL) GetByOwnerTgID(ctx context.Context, ownerTgID int64, p model.PaginationParams) (model.Page[model.Company], error) {
	return d.GetPage(ctx, DTO{"owner_tg_id": ownerTgID}, p)
}
