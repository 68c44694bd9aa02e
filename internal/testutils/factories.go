package testutils

import (
	"time"

	"payroll-backend/internal/database/models"

	"github.com/google/uuid"
)

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique name so suites can create several companies per test
		Name:         "Test Company " + id.String()[:8],
		ContactEmail: "billing@testcompany.com",
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		Email:     "jane.doe+" + id.String()[:8] + "@test.com",
		FirstName: "Jane",
		LastName:  "Doe",
		IsActive:  true,
	}
}

// WithCompany sets the company ID for the user
func (f *UserFactory) WithCompany(companyID uuid.UUID) *models.User {
	user := f.Create()
	user.CompanyID = companyID
	return user
}

// WorkscheduleFactory provides methods to create test Workschedule data
type WorkscheduleFactory struct{}

// NewWorkscheduleFactory creates a new WorkscheduleFactory
func NewWorkscheduleFactory() *WorkscheduleFactory {
	return &WorkscheduleFactory{}
}

// Create creates a test Workschedule with default values
func (f *WorkscheduleFactory) Create() *models.Workschedule {
	return &models.Workschedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CompanyID: uuid.New(),
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		Status:    models.WorkscheduleStatusPending,
	}
}

// WithCompany sets the company ID for the workschedule
func (f *WorkscheduleFactory) WithCompany(companyID uuid.UUID) *models.Workschedule {
	schedule := f.Create()
	schedule.CompanyID = companyID
	return schedule
}

// WithWindow sets the date window for the workschedule
func (f *WorkscheduleFactory) WithWindow(companyID uuid.UUID, start, end time.Time) *models.Workschedule {
	schedule := f.Create()
	schedule.CompanyID = companyID
	schedule.StartDate = start
	schedule.EndDate = end
	return schedule
}

// WorkscheduleDetailFactory provides methods to create test detail data
type WorkscheduleDetailFactory struct{}

// NewWorkscheduleDetailFactory creates a new WorkscheduleDetailFactory
func NewWorkscheduleDetailFactory() *WorkscheduleDetailFactory {
	return &WorkscheduleDetailFactory{}
}

// Create creates a test WorkscheduleDetail with one 8-hour interval
func (f *WorkscheduleDetailFactory) Create(scheduleID, userID uuid.UUID, date time.Time) *models.WorkscheduleDetail {
	start := time.Date(date.Year(), date.Month(), date.Day(), 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	return &models.WorkscheduleDetail{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		WorkscheduleID: scheduleID,
		UserID:         userID,
		ScheduleDate:   date,
		Duration:       28800,
		TimeDetails: []models.WorkscheduleTimeDetail{
			{
				BaseModel: models.BaseModel{ID: uuid.New()},
				StartTime: start,
				EndTime:   end,
				Duration:  28800,
			},
		},
	}
}
