package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luvremak/db-coursework/internal/middleware"
	"github.com/luvremak/db-coursework/internal/model"
	"github.com/luvremak/db-coursework/internal/service"
)

type CompanyHandler struct{ companies *service.CompanyService }

func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req model.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	company, err := h.companies.CreateCompany(c.Request.Context(), req.Name, req.Code, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.companies.DeleteCompany(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompanyHandler) Mine(c *gin.Context) {
	page, err := h.companies.GetMyCompanies(c.Request.Context(), middleware.UserID(c), pagination(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CompanyHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	company, err := h.companies.GetCompanyDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}
