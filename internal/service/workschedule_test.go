package service_test

import (
	"testing"
	"time"

	"payroll-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// WorkscheduleServiceTestSuite defines the test suite for WorkscheduleService
type WorkscheduleServiceTestSuite struct {
	suite.Suite
	validator *validator.Validate
}

// SetupTest sets up the test suite
func (suite *WorkscheduleServiceTestSuite) SetupTest() {
	suite.validator = validator.New()
}

// TestCreateWorkscheduleValidation tests the validation rules on the create request
func (suite *WorkscheduleServiceTestSuite) TestCreateWorkscheduleValidation() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		request     *service.CreateWorkscheduleRequest
		expectError bool
		errorMsg    string
	}{
		{
			name: "Valid request",
			request: &service.CreateWorkscheduleRequest{
				CompanyID: uuid.New(),
				StartDate: start,
				EndDate:   end,
			},
			expectError: false,
		},
		{
			name: "Missing company ID",
			request: &service.CreateWorkscheduleRequest{
				StartDate: start,
				EndDate:   end,
			},
			expectError: true,
			errorMsg:    "CompanyID",
		},
		{
			name: "Missing start date",
			request: &service.CreateWorkscheduleRequest{
				CompanyID: uuid.New(),
				EndDate:   end,
			},
			expectError: true,
			errorMsg:    "StartDate",
		},
		{
			name: "Missing end date",
			request: &service.CreateWorkscheduleRequest{
				CompanyID: uuid.New(),
				StartDate: start,
			},
			expectError: true,
			errorMsg:    "EndDate",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.validator.Struct(tc.request)
			if tc.expectError {
				suite.Error(err)
				suite.Contains(err.Error(), tc.errorMsg)
			} else {
				suite.NoError(err)
			}
		})
	}
}

// TestWorkscheduleServiceTestSuite runs the test suite
func TestWorkscheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkscheduleServiceTestSuite))
}
