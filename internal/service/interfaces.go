package service

import "github.com/google/uuid"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the contract handlers use for companies
type CompanyServiceInterface interface {
	Create(req *CreateCompanyRequest) (*CompanyResponse, error)
	GetByID(id uuid.UUID) (*CompanyResponse, error)
	GetAll(page, pageSize int) (*CompanyListResponse, error)
	Update(id uuid.UUID, req *UpdateCompanyRequest) (*CompanyResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the contract handlers use for users
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	ListByCompany(companyID uuid.UUID, page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// WorkscheduleServiceInterface defines the contract handlers use for workschedules
type WorkscheduleServiceInterface interface {
	Create(req *CreateWorkscheduleRequest) (*WorkscheduleResponse, error)
	GetByID(id uuid.UUID) (*WorkscheduleResponse, error)
	ListByCompany(companyID uuid.UUID, page, pageSize int) (*WorkscheduleListResponse, error)
	Update(id uuid.UUID, req *UpdateWorkscheduleRequest) (*WorkscheduleResponse, error)
	Delete(id uuid.UUID) error
}

// WorkscheduleDetailServiceInterface defines the contract handlers use for details
type WorkscheduleDetailServiceInterface interface {
	Create(req *CreateWorkscheduleDetailRequest) (*WorkscheduleDetailResponse, error)
	BulkCreate(req *BulkCreateWorkscheduleDetailRequest) (*WorkscheduleDetailResponse, error)
	GetByID(id uuid.UUID) (*WorkscheduleDetailResponse, error)
	ListByScheduleAndUser(scheduleID, userID uuid.UUID, page, pageSize int) (*WorkscheduleDetailListResponse, error)
	Update(id uuid.UUID, req *UpdateWorkscheduleDetailRequest) (*WorkscheduleDetailResponse, error)
	UpdateTimeDetail(id uuid.UUID, req *UpdateTimeDetailRequest) (*TimeDetailResponse, error)
	BulkRemove(req *BulkRemoveWorkscheduleDetailsRequest) ([]DeletedWorkscheduleDetail, error)
}

// Interface guards
var (
	_ CompanyServiceInterface            = (*CompanyService)(nil)
	_ UserServiceInterface               = (*UserService)(nil)
	_ WorkscheduleServiceInterface       = (*WorkscheduleService)(nil)
	_ WorkscheduleDetailServiceInterface = (*WorkscheduleDetailService)(nil)
)
