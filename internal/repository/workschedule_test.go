package repository

import (
	"testing"
	"time"

	"payroll-backend/internal/database/models"
	"payroll-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// WorkscheduleRepositoryTestSuite tests the WorkscheduleRepository
type WorkscheduleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *WorkscheduleRepository

	companyFactory *testutils.CompanyFactory
	userFactory    *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *WorkscheduleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewWorkscheduleRepository(suite.baseTestSuite.DB)
	suite.companyFactory = testutils.NewCompanyFactory()
	suite.userFactory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkscheduleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkscheduleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkscheduleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a company (FK) directly via gorm
func (suite *WorkscheduleRepositoryTestSuite) createCompany() *models.Company {
	c := suite.companyFactory.Create()
	err := suite.baseTestSuite.DB.Create(c).Error
	suite.NoError(err)
	return c
}

// helper to insert a user directly via gorm
func (suite *WorkscheduleRepositoryTestSuite) createUser(companyID uuid.UUID) *models.User {
	u := suite.userFactory.WithCompany(companyID)
	err := suite.baseTestSuite.DB.Create(u).Error
	suite.NoError(err)
	return u
}

// helper to insert a workschedule directly via gorm
func (suite *WorkscheduleRepositoryTestSuite) createSchedule(companyID uuid.UUID, start, end time.Time) *models.Workschedule {
	s := &models.Workschedule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: companyID,
		StartDate: start,
		EndDate:   end,
		Status:    models.WorkscheduleStatusPending,
	}
	err := suite.baseTestSuite.DB.Create(s).Error
	suite.NoError(err)
	return s
}

// helper to insert a detail with a single time detail of the given duration,
// starting at 09:00 UTC on the given date
func (suite *WorkscheduleRepositoryTestSuite) createDetailWithInterval(scheduleID, userID uuid.UUID, date time.Time, durationSeconds int64) *models.WorkscheduleDetail {
	start := time.Date(date.Year(), date.Month(), date.Day(), 9, 0, 0, 0, time.UTC)
	d := &models.WorkscheduleDetail{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		WorkscheduleID: scheduleID,
		UserID:         userID,
		ScheduleDate:   date,
		Duration:       durationSeconds,
		TimeDetails: []models.WorkscheduleTimeDetail{
			{
				BaseModel: models.BaseModel{ID: uuid.New()},
				StartTime: start,
				EndTime:   start.Add(time.Duration(durationSeconds) * time.Second),
				Duration:  durationSeconds,
			},
		},
	}
	err := suite.baseTestSuite.DB.Create(d).Error
	suite.NoError(err)
	return d
}

// TestCreate tests creating a new workschedule
func (suite *WorkscheduleRepositoryTestSuite) TestCreate() {
	company := suite.createCompany()

	schedule := &models.Workschedule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: company.ID,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		Status:    models.WorkscheduleStatusPending,
	}

	err := suite.repo.Create(schedule)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, schedule.ID)
	suite.NotZero(schedule.CreatedAt)

	found, err := suite.repo.GetByID(schedule.ID)
	suite.NoError(err)
	suite.Equal(company.ID, found.CompanyID)
	suite.Equal(models.WorkscheduleStatusPending, found.Status)
	suite.Equal(int64(0), found.PayrollAllocatedHours)
}

// TestCreateDuplicateWindow verifies the composite unique index rejects a
// second schedule with the same company and date window
func (suite *WorkscheduleRepositoryTestSuite) TestCreateDuplicateWindow() {
	company := suite.createCompany()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

	suite.createSchedule(company.ID, start, end)

	dup := &models.Workschedule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: company.ID,
		StartDate: start,
		EndDate:   end,
		Status:    models.WorkscheduleStatusPending,
	}
	err := suite.repo.Create(dup)

	suite.Error(err)
}

// TestFindByCompanyAndWindow tests the duplicate pre-check lookup
func (suite *WorkscheduleRepositoryTestSuite) TestFindByCompanyAndWindow() {
	company := suite.createCompany()
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	created := suite.createSchedule(company.ID, start, end)

	found, err := suite.repo.FindByCompanyAndWindow(company.ID, start, end)
	suite.NoError(err)
	suite.Equal(created.ID, found.ID)

	// Different window of the same company is not a match
	_, err = suite.repo.FindByCompanyAndWindow(company.ID, start.AddDate(0, 0, 1), end)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByCompanyID tests listing with pagination, newest window first
func (suite *WorkscheduleRepositoryTestSuite) TestGetByCompanyID() {
	company := suite.createCompany()
	suite.createSchedule(company.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	suite.createSchedule(company.ID, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))
	suite.createSchedule(company.ID, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC))

	schedules, total, err := suite.repo.GetByCompanyID(company.ID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(schedules, 2)
	suite.True(schedules[0].StartDate.After(schedules[1].StartDate))
}

// TestRecalculateAllocatedHours verifies the weekly sum only counts intervals
// whose start time falls inside the given week bounds
func (suite *WorkscheduleRepositoryTestSuite) TestRecalculateAllocatedHours() {
	company := suite.createCompany()
	user := suite.createUser(company.ID)
	schedule := suite.createSchedule(company.ID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC))

	// Week 1: Mon 2024-01-01 .. Sun 2024-01-07
	suite.createDetailWithInterval(schedule.ID, user.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 3600)
	suite.createDetailWithInterval(schedule.ID, user.ID, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 3600)
	// Week 2: Mon 2024-01-08
	suite.createDetailWithInterval(schedule.ID, user.ID, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), 3600)

	weekStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC)

	err := suite.repo.RecalculateAllocatedHours(schedule.ID, weekStart, weekEnd)
	suite.NoError(err)

	found, err := suite.repo.GetByID(schedule.ID)
	suite.NoError(err)
	suite.Equal(int64(7200), found.PayrollAllocatedHours)

	// Recalculating the same week is idempotent
	err = suite.repo.RecalculateAllocatedHours(schedule.ID, weekStart, weekEnd)
	suite.NoError(err)
	found, err = suite.repo.GetByID(schedule.ID)
	suite.NoError(err)
	suite.Equal(int64(7200), found.PayrollAllocatedHours)

	// Recalculating week 2 replaces the total with that week's sum
	err = suite.repo.RecalculateAllocatedHours(schedule.ID,
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC))
	suite.NoError(err)
	found, err = suite.repo.GetByID(schedule.ID)
	suite.NoError(err)
	suite.Equal(int64(3600), found.PayrollAllocatedHours)
}

// TestRecalculateAllocatedHoursEmptyWeek zeroes the total when no interval
// starts inside the week
func (suite *WorkscheduleRepositoryTestSuite) TestRecalculateAllocatedHoursEmptyWeek() {
	company := suite.createCompany()
	schedule := suite.createSchedule(company.ID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))

	err := suite.repo.RecalculateAllocatedHours(schedule.ID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC))
	suite.NoError(err)

	found, err := suite.repo.GetByID(schedule.ID)
	suite.NoError(err)
	suite.Equal(int64(0), found.PayrollAllocatedHours)
}

// TestOpenDue tests the Pending -> Open transition on the start date
func (suite *WorkscheduleRepositoryTestSuite) TestOpenDue() {
	company := suite.createCompany()
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	due := suite.createSchedule(company.ID, today, today.AddDate(0, 0, 6))
	notDue := suite.createSchedule(company.ID, today.AddDate(0, 0, 7), today.AddDate(0, 0, 13))

	opened, err := suite.repo.OpenDue(today)
	suite.NoError(err)
	suite.Equal(int64(1), opened)

	found, err := suite.repo.GetByID(due.ID)
	suite.NoError(err)
	suite.Equal(models.WorkscheduleStatusOpen, found.Status)

	untouched, err := suite.repo.GetByID(notDue.ID)
	suite.NoError(err)
	suite.Equal(models.WorkscheduleStatusPending, untouched.Status)

	// Second run on the same day matches nothing
	opened, err = suite.repo.OpenDue(today)
	suite.NoError(err)
	suite.Equal(int64(0), opened)
}

// TestCloseDue tests the transition to Closed on the end date
func (suite *WorkscheduleRepositoryTestSuite) TestCloseDue() {
	company := suite.createCompany()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	schedule := suite.createSchedule(company.ID, start, end)

	closed, err := suite.repo.CloseDue(end)
	suite.NoError(err)
	suite.Equal(int64(1), closed)

	found, err := suite.repo.GetByID(schedule.ID)
	suite.NoError(err)
	suite.Equal(models.WorkscheduleStatusClosed, found.Status)

	// Idempotent on rerun
	closed, err = suite.repo.CloseDue(end)
	suite.NoError(err)
	suite.Equal(int64(0), closed)
}

// TestDelete tests deleting a workschedule
func (suite *WorkscheduleRepositoryTestSuite) TestDelete() {
	company := suite.createCompany()
	schedule := suite.createSchedule(company.ID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))

	err := suite.repo.Delete(schedule.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(schedule.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestWorkscheduleRepositoryTestSuite runs the test suite
func TestWorkscheduleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkscheduleRepositoryTestSuite))
}
