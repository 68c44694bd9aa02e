package service_test

import (
	"testing"
	"time"

	"payroll-backend/internal/database/models"
	"payroll-backend/internal/events"
	"payroll-backend/internal/repository"
	"payroll-backend/internal/service"
	"payroll-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// WorkscheduleDetailFlowTestSuite exercises the detail service against a real
// database: paired inserts, weekly payroll recalculation and bulk removal.
type WorkscheduleDetailFlowTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite

	scheduleRepo    *repository.WorkscheduleRepository
	scheduleService *service.WorkscheduleService
	detailService   *service.WorkscheduleDetailService
	dispatcher      *events.Dispatcher

	companyFactory *testutils.CompanyFactory
	userFactory    *testutils.UserFactory
}

// SetupSuite runs before all tests in the suite
func (suite *WorkscheduleDetailFlowTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	db := suite.baseTestSuite.DB
	validate := validator.New()

	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	suite.scheduleRepo = repository.NewWorkscheduleRepository(db)
	detailRepo := repository.NewWorkscheduleDetailRepository(db)
	timeDetailRepo := repository.NewWorkscheduleTimeDetailRepository(db)

	suite.dispatcher = events.NewDispatcher()
	suite.scheduleService = service.NewWorkscheduleService(suite.scheduleRepo, companyRepo, validate)
	suite.detailService = service.NewWorkscheduleDetailService(detailRepo, timeDetailRepo, suite.scheduleRepo, userRepo, validate, suite.dispatcher)

	suite.companyFactory = testutils.NewCompanyFactory()
	suite.userFactory = testutils.NewUserFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *WorkscheduleDetailFlowTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *WorkscheduleDetailFlowTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *WorkscheduleDetailFlowTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to seed a company, user and a two-week schedule through the services
func (suite *WorkscheduleDetailFlowTestSuite) seed() (*service.WorkscheduleResponse, *models.User) {
	company := suite.companyFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(company).Error)

	user := suite.userFactory.WithCompany(company.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	schedule, err := suite.scheduleService.Create(&service.CreateWorkscheduleRequest{
		CompanyID: company.ID,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	})
	suite.NoError(err)
	suite.Equal(models.WorkscheduleStatusPending, schedule.Status)
	return schedule, user
}

func (suite *WorkscheduleDetailFlowTestSuite) allocatedSeconds(scheduleID uuid.UUID) int64 {
	found, err := suite.scheduleRepo.GetByID(scheduleID)
	suite.NoError(err)
	return found.PayrollAllocatedHours
}

// TestCreateDetailUpdatesAllocatedHours verifies an 8h day lands as 28800
// seconds on the owning workschedule and the created event is published
func (suite *WorkscheduleDetailFlowTestSuite) TestCreateDetailUpdatesAllocatedHours() {
	schedule, user := suite.seed()

	var received []events.WorkscheduleDetailCreated
	suite.dispatcher.Subscribe(events.TopicWorkscheduleDetailCreated, func(event interface{}) {
		if e, ok := event.(events.WorkscheduleDetailCreated); ok {
			received = append(received, e)
		}
	})

	detail, err := suite.detailService.Create(&service.CreateWorkscheduleDetailRequest{
		WorkscheduleID: schedule.ID,
		UserID:         user.ID,
		ScheduleDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC),
	})

	suite.NoError(err)
	suite.Equal(int64(28800), detail.Duration)
	suite.Len(detail.TimeDetails, 1)
	suite.Equal(int64(28800), suite.allocatedSeconds(schedule.ID))
	suite.Len(received, 1)
	suite.Equal(detail.ID, received[0].DetailID)
}

// TestBulkCreateSumsEntries verifies a split shift sums both intervals
func (suite *WorkscheduleDetailFlowTestSuite) TestBulkCreateSumsEntries() {
	schedule, user := suite.seed()

	date := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	detail, err := suite.detailService.BulkCreate(&service.BulkCreateWorkscheduleDetailRequest{
		WorkscheduleID: schedule.ID,
		UserID:         user.ID,
		ScheduleDate:   date,
		Entries: []service.TimeDetailEntry{
			{
				StartTime: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
			},
			{
				StartTime: time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC),
			},
		},
	})

	suite.NoError(err)
	suite.Equal(int64(25200), detail.Duration)
	suite.Len(detail.TimeDetails, 2)
	suite.Equal(int64(25200), suite.allocatedSeconds(schedule.ID))
}

// TestMoveDetailAcrossWeeks verifies moving a detail to the next ISO week
// recalculates the schedule against the week the detail left
func (suite *WorkscheduleDetailFlowTestSuite) TestMoveDetailAcrossWeeks() {
	schedule, user := suite.seed()

	detail, err := suite.detailService.Create(&service.CreateWorkscheduleDetailRequest{
		WorkscheduleID: schedule.ID,
		UserID:         user.ID,
		ScheduleDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC),
	})
	suite.NoError(err)
	suite.Equal(int64(28800), suite.allocatedSeconds(schedule.ID))

	// Move to week 2; the detail's intervals follow the new date
	newDate := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	moved, err := suite.detailService.Update(detail.ID, &service.UpdateWorkscheduleDetailRequest{
		ScheduleDate: &newDate,
	})
	suite.NoError(err)
	suite.Equal("2024-01-09", moved.ScheduleDate)

	// Recalculation happened last for the destination week, which now holds
	// the full 8 hours
	suite.Equal(int64(28800), suite.allocatedSeconds(schedule.ID))

	// Week 1 is empty after the move
	suite.NoError(suite.scheduleRepo.RecalculateAllocatedHours(schedule.ID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 23, 59, 59, 0, time.UTC)))
	suite.Equal(int64(0), suite.allocatedSeconds(schedule.ID))
}

// TestUpdateTimeDetailRefreshesAggregates verifies shortening an interval
// flows into the parent detail and the schedule total
func (suite *WorkscheduleDetailFlowTestSuite) TestUpdateTimeDetailRefreshesAggregates() {
	schedule, user := suite.seed()

	detail, err := suite.detailService.Create(&service.CreateWorkscheduleDetailRequest{
		WorkscheduleID: schedule.ID,
		UserID:         user.ID,
		ScheduleDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC),
	})
	suite.NoError(err)

	newEnd := time.Date(2024, 1, 2, 13, 0, 0, 0, time.UTC)
	updated, err := suite.detailService.UpdateTimeDetail(detail.TimeDetails[0].ID, &service.UpdateTimeDetailRequest{
		EndTime: &newEnd,
	})
	suite.NoError(err)
	suite.Equal(int64(14400), updated.Duration)

	refreshed, err := suite.detailService.GetByID(detail.ID)
	suite.NoError(err)
	suite.Equal(int64(14400), refreshed.Duration)
	suite.Equal(int64(14400), suite.allocatedSeconds(schedule.ID))
}

// TestBulkRemoveRecalculates verifies removed days leave the weekly total
func (suite *WorkscheduleDetailFlowTestSuite) TestBulkRemoveRecalculates() {
	schedule, user := suite.seed()

	first, err := suite.detailService.Create(&service.CreateWorkscheduleDetailRequest{
		WorkscheduleID: schedule.ID,
		UserID:         user.ID,
		ScheduleDate:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		StartTime:      time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC),
	})
	suite.NoError(err)

	second, err := suite.detailService.Create(&service.CreateWorkscheduleDetailRequest{
		WorkscheduleID: schedule.ID,
		UserID:         user.ID,
		ScheduleDate:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		StartTime:      time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2024, 1, 3, 13, 0, 0, 0, time.UTC),
	})
	suite.NoError(err)
	suite.Equal(int64(43200), suite.allocatedSeconds(schedule.ID))

	deleted, err := suite.detailService.BulkRemove(&service.BulkRemoveWorkscheduleDetailsRequest{
		IDs:            []uuid.UUID{first.ID},
		UserID:         user.ID,
		WorkscheduleID: schedule.ID,
	})
	suite.NoError(err)
	suite.Len(deleted, 1)
	suite.Equal("2024-01-02", deleted[0].ScheduleDate)
	suite.Equal(int64(14400), suite.allocatedSeconds(schedule.ID))

	// The untouched day survives
	remaining, err := suite.detailService.GetByID(second.ID)
	suite.NoError(err)
	suite.Equal(int64(14400), remaining.Duration)
}

// TestWorkscheduleDetailFlowTestSuite runs the test suite
func TestWorkscheduleDetailFlowTestSuite(t *testing.T) {
	suite.Run(t, new(WorkscheduleDetailFlowTestSuite))
}
