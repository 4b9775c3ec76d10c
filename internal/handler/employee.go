package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luvremak/db-coursework/internal/middleware"
	"github.com/luvremak/db-coursework/internal/model"
	"github.com/luvremak/db-coursework/internal/service"
)

type EmployeeHandler struct{ employees *service.EmployeeService }

func NewEmployeeHandler(employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	employee, err := h.employees.CreateEmployee(c.Request.Context(),
		req.CompanyID, req.TelegramID, req.DisplayName, req.SalaryPerHour, req.IsAdmin, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.employees.DeleteEmployee(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeHandler) SetDisplayName(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.SetDisplayNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	employee, err := h.employees.SetDisplayName(c.Request.Context(), id, req.DisplayName, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) SetSalary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.SetSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	employee, err := h.employees.SetSalaryPerHour(c.Request.Context(), id, req.SalaryPerHour, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) SetActive(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		badRequest(c, "invalid request")
		return
	}
	employee, err := h.employees.SetIsActive(c.Request.Context(), id, *req.IsActive, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) ListByCompany(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, err := h.employees.GetEmployees(c.Request.Context(), companyID, pagination(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *EmployeeHandler) Details(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	employee, err := h.employees.GetEmployeeDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}
