package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luvremak/db-coursework/internal/model"
	"github.com/luvremak/db-coursework/internal/service"
)

type TimeTrackingHandler struct{ tracking *service.TimeTrackingService }

func NewTimeTrackingHandler(tracking *service.TimeTrackingService) *TimeTrackingHandler {
	return &TimeTrackingHandler{tracking: tracking}
}

// Create validates the duration here; the service trusts its caller.
func (h *TimeTrackingHandler) Create(c *gin.Context) {
	var req model.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	entry, err := h.tracking.CreateTimeEntry(c.Request.Context(), req.TaskID, req.EmployeeID, req.DurationMinutes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *TimeTrackingHandler) Total(c *gin.Context) {
	taskID, ok := queryInt64(c, "task_id")
	if !ok {
		return
	}
	employeeID, ok := queryInt64(c, "employee_id")
	if !ok {
		return
	}
	total, err := h.tracking.GetTotalMinutesByTaskAndEmployee(c.Request.Context(), taskID, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_minutes": total})
}

func (h *TimeTrackingHandler) ProjectStats(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.tracking.GetProjectStatsForCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *TimeTrackingHandler) EmployeeStats(c *gin.Context) {
	companyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	stats, err := h.tracking.GetEmployeeStatsForCompany(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
