// Package service holds the business layer: authorization, validation
// and orchestration across the entity repositories. Services return
// entities or apperr values; handlers stay free of business rules.
package service

import (
	"context"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/dal"
	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/model"
)

// CompanyService is the authorization root: ownership of a company is
// the strongest right in the system.
type CompanyService struct {
	companies *dal.CompanyDAL
}

func NewCompanyService(companies *dal.CompanyDAL) *CompanyService {
	return &CompanyService{companies: companies}
}

func (s *CompanyService) CreateCompany(ctx context.Context, name, code string, ownerTgID int64) (model.Company, error) {
	code, ok := normalizeCode(code)
	if !ok {
		return model.Company{}, apperr.InvalidCode("company", "company code must be exactly 3 letters")
	}

	id, err := s.companies.Create(ctx, model.Company{Name: name, Code: code, OwnerTgID: ownerTgID})
	if err != nil {
		return model.Company{}, err
	}
	logger.Info(ctx, "company.created", "id", id, "code", code, "owner_tg_id", ownerTgID)
	return s.companies.GetByID(ctx, id)
}

func (s *CompanyService) DeleteCompany(ctx context.Context, companyID, userTgID int64) error {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company.OwnerTgID != userTgID {
		return apperr.AccessDenied("company", "only the company owner can delete the company")
	}
	if err := s.companies.Delete(ctx, companyID); err != nil {
		return err
	}
	logger.Info(ctx, "company.deleted", "id", companyID, "by", userTgID)
	return nil
}

func (s *CompanyService) GetMyCompanies(ctx context.Context, userTgID int64, p model.PaginationParams) (model.Page[model.Company], error) {
	return s.companies.GetByOwnerTgID(ctx, userTgID, p)
}

func (s *CompanyService) GetCompanyDetails(ctx context.Context, companyID int64) (model.Company, error) {
	return s.companies.GetByID(ctx, companyID)
}

func (s *CompanyService) GetCompanyByCode(ctx context.Context, code string) (model.Company, error) {
	return s.companies.GetByCode(ctx, code)
}

// VerifyUserIsOwner never fails on a missing company; it just answers
// false.
func (s *CompanyService) VerifyUserIsOwner(ctx context.Context, companyID, userTgID int64) (bool, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if apperr.IsKind(err, apperr.KindNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return company.OwnerTgID == userTgID, nil
}
