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

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      *repository.CompanyRepository
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo *repository.CompanyRepository, validator *validator.Validate) *CompanyService {
	return &CompanyService{repo: repo, validator: validator}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

// UpdateCompanyRequest represents a partial update of a company
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
	Archived     *bool   `json:"archived,omitempty"`
}

// CompanyResponse represents the response for company operations
type CompanyResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email"`
	Archived     bool      `json:"archived"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// CompanyListResponse represents a paginated list of companies
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a new company
func (s *CompanyService) Create(req *CreateCompanyRequest) (*CompanyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrCompanyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check for existing company: %w", err)
	}

	company := &models.Company{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
	}
	if err := s.repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return s.toResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return s.toResponse(company), nil
}

// GetAll retrieves all companies
func (s *CompanyService) GetAll(page, pageSize int) (*CompanyListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	companies, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]CompanyResponse, len(companies))
	for i, company := range companies {
		responses[i] = *s.toResponse(&company)
	}

	return &CompanyListResponse{
		Companies: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies a partial update to a company
func (s *CompanyService) Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if req.Name != nil && *req.Name != company.Name {
		if _, err := s.repo.GetByName(*req.Name); err == nil {
			return nil, apperrors.ErrCompanyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check for existing company: %w", err)
		}
		company.Name = *req.Name
	}
	if req.ContactEmail != nil {
		company.ContactEmail = *req.ContactEmail
	}
	if req.Archived != nil {
		company.Archived = *req.Archived
	}

	if err := s.repo.Update(company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return s.toResponse(company), nil
}

// Delete deletes a company
func (s *CompanyService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to get company: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}

func (s *CompanyService) toResponse(company *models.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:           company.ID,
		Name:         company.Name,
		ContactEmail: company.ContactEmail,
		Archived:     company.Archived,
		CreatedAt:    company.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    company.UpdatedAt.Format(time.RFC3339),
	}
}
