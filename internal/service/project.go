package service

import (
	"context"

	"github.com/luvremak/db-coursework/internal/apperr"
	"github.com/luvremak/db-coursework/internal/dal"
	"github.com/luvremak/db-coursework/internal/logger"
	"github.com/luvremak/db-coursework/internal/model"
)

type ProjectService struct {
	projects  *dal.ProjectDAL
	companies *CompanyService
}

func NewProjectService(projects *dal.ProjectDAL, companies *CompanyService) *ProjectService {
	return &ProjectService{projects: projects, companies: companies}
}

// CreateProject is owner-only; admins can manage tasks and employees but
// not the project list. Project codes are unique across all companies.
func (s *ProjectService) CreateProject(ctx context.Context, companyID int64, name, code string, userTgID int64) (model.Project, error) {
	isOwner, err := s.companies.VerifyUserIsOwner(ctx, companyID, userTgID)
	if err != nil {
		return model.Project{}, err
	}
	if !isOwner {
		return model.Project{}, apperr.AccessDenied("project", "only the company owner can create projects")
	}

	code, ok := normalizeCode(code)
	if !ok {
		return model.Project{}, apperr.InvalidCode("project", "project code must be exactly 3 letters")
	}

	id, err := s.projects.Create(ctx, model.Project{CompanyID: companyID, Name: name, Code: code})
	if err != nil {
		return model.Project{}, err
	}
	logger.Info(ctx, "project.created", "id", id, "company_id", companyID, "code", code, "by", userTgID)
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userTgID int64) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	isOwner, err := s.companies.VerifyUserIsOwner(ctx, project.CompanyID, userTgID)
	if err != nil {
		return err
	}
	if !isOwner {
		return apperr.AccessDenied("project", "only the company owner can delete projects")
	}
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return err
	}
	logger.Info(ctx, "project.deleted", "id", projectID, "by", userTgID)
	return nil
}

func (s *ProjectService) GetProjects(ctx context.Context, companyID int64, p model.PaginationParams) (model.Page[model.Project], error) {
	return s.projects.GetByCompanyID(ctx, companyID, p)
}

func (s *ProjectService) GetProjectDetails(ctx context.Context, projectID int64) (model.Project, error) {
	return s.projects.GetByID(ctx, projectID)
}

func (s *ProjectService) GetProjectByCode(ctx context.Context, code string) (model.Project, error) {
	return s.projects.GetByCode(ctx, code)
}
