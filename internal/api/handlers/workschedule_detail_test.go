package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"payroll-backend/internal/api/handlers"
	apperrors "payroll-backend/internal/errors"
	"payroll-backend/internal/mocks"
	"payroll-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// WorkscheduleDetailHandlerTestSuite defines the test suite for WorkscheduleDetailHandler
type WorkscheduleDetailHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockDetailSv *mocks.MockWorkscheduleDetailServiceInterface
	handler      *handlers.WorkscheduleDetailHandler
	router       *gin.Engine
}

func (suite *WorkscheduleDetailHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDetailSv = mocks.NewMockWorkscheduleDetailServiceInterface(suite.ctrl)
	suite.handler = handlers.NewWorkscheduleDetailHandler(suite.mockDetailSv)

	suite.router = gin.New()
	suite.router.POST("/workschedule-details", suite.handler.CreateDetail)
	suite.router.POST("/workschedule-details/bulk-delete", suite.handler.BulkRemoveDetails)
	suite.router.GET("/workschedule-details/:id", suite.handler.GetDetail)
	suite.router.GET("/workschedules/:id/users/:user_id/details", suite.handler.ListDetails)
}

func (suite *WorkscheduleDetailHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkscheduleDetailHandlerTestSuite) TestCreateDetail_Success() {
	scheduleID := uuid.New()
	userID := uuid.New()

	resp := &service.WorkscheduleDetailResponse{
		ID:             uuid.New(),
		WorkscheduleID: scheduleID,
		UserID:         userID,
		ScheduleDate:   "2024-01-02",
		Duration:       28800,
	}
	suite.mockDetailSv.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body := `{
		"workschedule_id": "` + scheduleID.String() + `",
		"user_id": "` + userID.String() + `",
		"schedule_date": "2024-01-02T00:00:00Z",
		"start_time": "2024-01-02T09:00:00Z",
		"end_time": "2024-01-02T17:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/workschedule-details", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.WorkscheduleDetailResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(28800), got.Duration)
	assert.Equal(suite.T(), "2024-01-02", got.ScheduleDate)
}

func (suite *WorkscheduleDetailHandlerTestSuite) TestCreateDetail_InvalidTimeRange() {
	suite.mockDetailSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrInvalidTimeRange)

	scheduleID := uuid.New()
	userID := uuid.New()
	body := `{
		"workschedule_id": "` + scheduleID.String() + `",
		"user_id": "` + userID.String() + `",
		"schedule_date": "2024-01-02T00:00:00Z",
		"start_time": "2024-01-02T17:00:00Z",
		"end_time": "2024-01-02T09:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/workschedule-details", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *WorkscheduleDetailHandlerTestSuite) TestCreateDetail_MalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/workschedule-details", strings.NewReader(`{"user_id": `))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *WorkscheduleDetailHandlerTestSuite) TestGetDetail_NotFound() {
	id := uuid.New()
	suite.mockDetailSv.EXPECT().GetByID(id).Return(nil, apperrors.ErrWorkscheduleDetailNotFound)

	req := httptest.NewRequest(http.MethodGet, "/workschedule-details/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *WorkscheduleDetailHandlerTestSuite) TestGetDetail_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/workschedule-details/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid detail ID")
}

func (suite *WorkscheduleDetailHandlerTestSuite) TestListDetails_DefaultPagination() {
	scheduleID := uuid.New()
	userID := uuid.New()

	resp := &service.WorkscheduleDetailListResponse{
		Details:  []service.WorkscheduleDetailResponse{},
		Total:    0,
		Page:     1,
		PageSize: 20,
	}
	suite.mockDetailSv.EXPECT().ListByScheduleAndUser(scheduleID, userID, 1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/workschedules/"+scheduleID.String()+"/users/"+userID.String()+"/details", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.WorkscheduleDetailListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, got.Page)
	assert.Equal(suite.T(), 20, got.PageSize)
}

func (suite *WorkscheduleDetailHandlerTestSuite) TestBulkRemoveDetails_Success() {
	detailID := uuid.New()
	userID := uuid.New()
	scheduleID := uuid.New()

	deleted := []service.DeletedWorkscheduleDetail{
		{ID: detailID, ScheduleDate: "2024-01-02"},
	}
	suite.mockDetailSv.EXPECT().BulkRemove(gomock.Any()).Return(deleted, nil)

	body := `{
		"ids": ["` + detailID.String() + `"],
		"user_id": "` + userID.String() + `",
		"workschedule_id": "` + scheduleID.String() + `"
	}`
	req := httptest.NewRequest(http.MethodPost, "/workschedule-details/bulk-delete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), detailID.String())
	assert.Contains(suite.T(), w.Body.String(), "2024-01-02")
}

func TestWorkscheduleDetailHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WorkscheduleDetailHandlerTestSuite))
}
