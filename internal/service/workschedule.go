package service

import (
	"errors"
	"fmt"
	"time"

	"payroll-backend/internal/database/models"
	apperrors "payroll-backend/internal/errors"
	"payroll-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkscheduleService handles business logic for workschedules
type WorkscheduleService struct {
	repo        *repository.WorkscheduleRepository
	companyRepo *repository.CompanyRepository
	validator   *validator.Validate
}

// NewWorkscheduleService creates a new workschedule service
func NewWorkscheduleService(repo *repository.WorkscheduleRepository, companyRepo *repository.CompanyRepository, validator *validator.Validate) *WorkscheduleService {
	return &WorkscheduleService{
		repo:        repo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// CreateWorkscheduleRequest represents the request to create a workschedule
type CreateWorkscheduleRequest struct {
	CompanyID uuid.UUID `json:"company_id" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// UpdateWorkscheduleRequest represents a partial update of a workschedule
type UpdateWorkscheduleRequest struct {
	StartDate         *time.Time                 `json:"start_date,omitempty"`
	EndDate           *time.Time                 `json:"end_date,omitempty"`
	Status            *models.WorkscheduleStatus `json:"status,omitempty"`
	PayrollUsageHours *int64                     `json:"payroll_usage_hours,omitempty"`
}

// WorkscheduleResponse represents the response for workschedule operations
type WorkscheduleResponse struct {
	ID                    uuid.UUID                 `json:"id"`
	CompanyID             uuid.UUID                 `json:"company_id"`
	StartDate             string                    `json:"start_date"`
	EndDate               string                    `json:"end_date"`
	Status                models.WorkscheduleStatus `json:"status"`
	PayrollAllocatedHours int64                     `json:"payroll_allocated_hours"`
	PayrollUsageHours     int64                     `json:"payroll_usage_hours"`
	CreatedAt             string                    `json:"created_at"`
	UpdatedAt             string                    `json:"updated_at"`
}

// WorkscheduleListResponse represents a paginated list of workschedules
type WorkscheduleListResponse struct {
	Workschedules []WorkscheduleResponse `json:"workschedules"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new workschedule in Pending status. At most one schedule
// may exist per (company, start date, end date) window; the pre-check here is
// backed by a unique index for concurrent creators.
func (s *WorkscheduleService) Create(req *CreateWorkscheduleRequest) (*WorkscheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.companyRepo.GetByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	if _, err := s.repo.FindByCompanyAndWindow(req.CompanyID, req.StartDate, req.EndDate); err == nil {
		return nil, apperrors.ErrWorkscheduleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing workschedule: %w", err)
	}

	schedule := &models.Workschedule{
		CompanyID: req.CompanyID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    models.WorkscheduleStatusPending,
	}
	if err := s.repo.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create workschedule: %w", err)
	}

	return s.toResponse(schedule), nil
}

// GetByID retrieves a workschedule by ID
func (s *WorkscheduleService) GetByID(id uuid.UUID) (*WorkscheduleResponse, error) {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkscheduleNotFound
		}
		return nil, fmt.Errorf("failed to get workschedule: %w", err)
	}
	return s.toResponse(schedule), nil
}

// ListByCompany retrieves workschedules for a company
func (s *WorkscheduleService) ListByCompany(companyID uuid.UUID, page, pageSize int) (*WorkscheduleListResponse, error) {
	if _, err := s.companyRepo.GetByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	schedules, total, err := s.repo.GetByCompanyID(companyID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list workschedules: %w", err)
	}

	responses := make([]WorkscheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = *s.toResponse(&schedule)
	}

	return &WorkscheduleListResponse{
		Workschedules: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update applies a partial update to a workschedule
func (s *WorkscheduleService) Update(id uuid.UUID, req *UpdateWorkscheduleRequest) (*WorkscheduleResponse, error) {
	schedule, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkscheduleNotFound
		}
		return nil, fmt.Errorf("failed to get workschedule: %w", err)
	}

	if req.StartDate != nil {
		schedule.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		schedule.EndDate = *req.EndDate
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		schedule.Status = *req.Status
	}
	if req.PayrollUsageHours != nil {
		schedule.PayrollUsageHours = *req.PayrollUsageHours
	}

	if schedule.EndDate.Before(schedule.StartDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if err := s.repo.Update(schedule); err != nil {
		return nil, fmt.Errorf("failed to update workschedule: %w", err)
	}

	return s.toResponse(schedule), nil
}

// Delete deletes a workschedule and, through the FK cascade, its details
func (s *WorkscheduleService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkscheduleNotFound
		}
		return fmt.Errorf("failed to get workschedule: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete workschedule: %w", err)
	}
	return nil
}

func (s *WorkscheduleService) toResponse(schedule *models.Workschedule) *WorkscheduleResponse {
	return &WorkscheduleResponse{
		ID:                    schedule.ID,
		CompanyID:             schedule.CompanyID,
		StartDate:             schedule.StartDate.Format("2006-01-02"),
		EndDate:               schedule.EndDate.Format("2006-01-02"),
		Status:                schedule.Status,
		PayrollAllocatedHours: schedule.PayrollAllocatedHours,
		PayrollUsageHours:     schedule.PayrollUsageHours,
		CreatedAt:             schedule.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             schedule.UpdatedAt.Format(time.RFC3339),
	}
}
