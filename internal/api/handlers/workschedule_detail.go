package handlers

import (
	"net/http"

	"payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkscheduleDetailHandler handles HTTP requests for workschedule details
type WorkscheduleDetailHandler struct {
	detailService service.WorkscheduleDetailServiceInterface
}

// NewWorkscheduleDetailHandler creates a new workschedule detail handler
func NewWorkscheduleDetailHandler(detailService service.WorkscheduleDetailServiceInterface) *WorkscheduleDetailHandler {
	return &WorkscheduleDetailHandler{detailService: detailService}
}

// CreateDetail handles POST /workschedule-details
func (h *WorkscheduleDetailHandler) CreateDetail(c *gin.Context) {
	var req service.CreateWorkscheduleDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.detailService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// BulkCreateDetail handles POST /workschedule-details/bulk
func (h *WorkscheduleDetailHandler) BulkCreateDetail(c *gin.Context) {
	var req service.BulkCreateWorkscheduleDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.detailService.BulkCreate(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// GetDetail handles GET /workschedule-details/:id
func (h *WorkscheduleDetailHandler) GetDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid detail ID"})
		return
	}

	detail, err := h.detailService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// ListDetails handles GET /workschedules/:id/users/:user_id/details
func (h *WorkscheduleDetailHandler) ListDetails(c *gin.Context) {
	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workschedule ID"})
		return
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	page, pageSize := paginationParams(c)

	details, err := h.detailService.ListByScheduleAndUser(scheduleID, userID, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// UpdateDetail handles PATCH /workschedule-details/:id
func (h *WorkscheduleDetailHandler) UpdateDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid detail ID"})
		return
	}

	var req service.UpdateWorkscheduleDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.detailService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// UpdateTimeDetail handles PATCH /workschedule-time-details/:id
func (h *WorkscheduleDetailHandler) UpdateTimeDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time detail ID"})
		return
	}

	var req service.UpdateTimeDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeDetail, err := h.detailService.UpdateTimeDetail(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, timeDetail)
}

// BulkRemoveDetails handles POST /workschedule-details/bulk-delete
func (h *WorkscheduleDetailHandler) BulkRemoveDetails(c *gin.Context) {
	var req service.BulkRemoveWorkscheduleDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := h.detailService.BulkRemove(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
