package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luvremak/db-coursework/internal/middleware"
	"github.com/luvremak/db-coursework/internal/model"
	"github.com/luvremak/db-coursework/internal/service"
)

type ProjectHandler struct{ projects *service.ProjectService }

func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	project, err := h.projects.CreateProject(c.Request.Context(), req.CompanyID, req.Name, req.Code, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.projects.DeleteProject(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListByCompany(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, err := h.projects.GetProjects(c.Request.Context(), companyID, pagination(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ProjectHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, err := h.projects.GetProjectDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
