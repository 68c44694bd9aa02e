package handlers

import (
	"net/http"

	"payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkscheduleHandler handles HTTP requests for workschedules
type WorkscheduleHandler struct {
	workscheduleService service.WorkscheduleServiceInterface
}

// NewWorkscheduleHandler creates a new workschedule handler
func NewWorkscheduleHandler(workscheduleService service.WorkscheduleServiceInterface) *WorkscheduleHandler {
	return &WorkscheduleHandler{workscheduleService: workscheduleService}
}

// CreateWorkschedule handles POST /workschedules
func (h *WorkscheduleHandler) CreateWorkschedule(c *gin.Context) {
	var req service.CreateWorkscheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.workscheduleService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetWorkschedule handles GET /workschedules/:id
func (h *WorkscheduleHandler) GetWorkschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workschedule ID"})
		return
	}

	schedule, err := h.workscheduleService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ListWorkschedulesByCompany handles GET /companies/:id/workschedules
func (h *WorkscheduleHandler) ListWorkschedulesByCompany(c *gin.Context) {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	page, pageSize := paginationParams(c)

	schedules, err := h.workscheduleService.ListByCompany(companyID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// UpdateWorkschedule handles PATCH /workschedules/:id
func (h *WorkscheduleHandler) UpdateWorkschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workschedule ID"})
		return
	}

	var req service.UpdateWorkscheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.workscheduleService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteWorkschedule handles DELETE /workschedules/:id
func (h *WorkscheduleHandler) DeleteWorkschedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workschedule ID"})
		return
	}

	if err := h.workscheduleService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
