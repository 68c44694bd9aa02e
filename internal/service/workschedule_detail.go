package service

import (
	"errors"
	"fmt"
	"time"

	"payroll-backend/internal/database/models"
	apperrors "payroll-backend/internal/errors"
	"payroll-backend/internal/events"
	"payroll-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkscheduleDetailService handles business logic for workschedule details
// and their time details, including payroll recalculation on every mutation.
type WorkscheduleDetailService struct {
	repo           *repository.WorkscheduleDetailRepository
	timeDetailRepo *repository.WorkscheduleTimeDetailRepository
	scheduleRepo   *repository.WorkscheduleRepository
	userRepo       *repository.UserRepository
	validator      *validator.Validate
	publisher      events.Publisher
}

// NewWorkscheduleDetailService creates a new workschedule detail service
func NewWorkscheduleDetailService(
	repo *repository.WorkscheduleDetailRepository,
	timeDetailRepo *repository.WorkscheduleTimeDetailRepository,
	scheduleRepo *repository.WorkscheduleRepository,
	userRepo *repository.UserRepository,
	validator *validator.Validate,
	publisher events.Publisher,
) *WorkscheduleDetailService {
	return &WorkscheduleDetailService{
		repo:           repo,
		timeDetailRepo: timeDetailRepo,
		scheduleRepo:   scheduleRepo,
		userRepo:       userRepo,
		validator:      validator,
		publisher:      publisher,
	}
}

// CreateWorkscheduleDetailRequest represents the request to create a detail
// with its first time interval
type CreateWorkscheduleDetailRequest struct {
	WorkscheduleID uuid.UUID `json:"workschedule_id" validate:"required"`
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	ScheduleDate   time.Time `json:"schedule_date" validate:"required"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
}

// TimeDetailEntry is one raw clock-in/out pair in a bulk create request
type TimeDetailEntry struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

// BulkCreateWorkscheduleDetailRequest represents the request to create a
// detail with several time intervals at once
type BulkCreateWorkscheduleDetailRequest struct {
	WorkscheduleID uuid.UUID         `json:"workschedule_id" validate:"required"`
	UserID         uuid.UUID         `json:"user_id" validate:"required"`
	ScheduleDate   time.Time         `json:"schedule_date" validate:"required"`
	Entries        []TimeDetailEntry `json:"entries" validate:"required,min=1,dive"`
}

// UpdateWorkscheduleDetailRequest represents a partial update of a detail
type UpdateWorkscheduleDetailRequest struct {
	ScheduleDate *time.Time `json:"schedule_date,omitempty"`
}

// UpdateTimeDetailRequest represents a partial update of one time interval
type UpdateTimeDetailRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// BulkRemoveWorkscheduleDetailsRequest removes details by id, scoped to one
// user and one workschedule
type BulkRemoveWorkscheduleDetailsRequest struct {
	IDs            []uuid.UUID `json:"ids" validate:"required,min=1"`
	UserID         uuid.UUID   `json:"user_id" validate:"required"`
	WorkscheduleID uuid.UUID   `json:"workschedule_id" validate:"required"`
}

// TimeDetailResponse represents one time interval in responses
type TimeDetailResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Duration  int64     `json:"duration"`
}

// WorkscheduleDetailResponse represents the response for detail operations
type WorkscheduleDetailResponse struct {
	ID             uuid.UUID            `json:"id"`
	WorkscheduleID uuid.UUID            `json:"workschedule_id"`
	UserID         uuid.UUID            `json:"user_id"`
	ScheduleDate   string               `json:"schedule_date"`
	Duration       int64                `json:"duration"`
	TimeDetails    []TimeDetailResponse `json:"time_details"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
}

// WorkscheduleDetailListResponse represents a paginated list of details
type WorkscheduleDetailListResponse struct {
	Details  []WorkscheduleDetailResponse `json:"details"`
	Total    int64                        `json:"total"`
	Page     int                          `json:"page"`
	PageSize int                          `json:"page_size"`
}

// DeletedWorkscheduleDetail is the pre-deletion projection returned by bulk remove
type DeletedWorkscheduleDetail struct {
	ID           uuid.UUID `json:"id"`
	ScheduleDate string    `json:"schedule_date"`
}

// Create verifies the referenced user and workschedule, then inserts the
// detail row and its time-detail row in one transaction. The owning
// workschedule's allocated total is recalculated afterwards and a
// detail-created event is published.
func (s *WorkscheduleDetailService) Create(req *CreateWorkscheduleDetailRequest) (*WorkscheduleDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if err := s.checkReferences(req.UserID, req.WorkscheduleID); err != nil {
		return nil, err
	}

	duration := DurationSeconds(req.StartTime, req.EndTime)
	detail := &models.WorkscheduleDetail{
		WorkscheduleID: req.WorkscheduleID,
		UserID:         req.UserID,
		ScheduleDate:   req.ScheduleDate,
		Duration:       duration,
	}
	timeDetail := &models.WorkscheduleTimeDetail{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Duration:  duration,
	}

	if err := s.repo.CreateWithTimeDetail(detail, timeDetail); err != nil {
		return nil, fmt.Errorf("failed to create workschedule detail: %w", err)
	}
	detail.TimeDetails = []models.WorkscheduleTimeDetail{*timeDetail}

	if err := s.recalculate(req.WorkscheduleID, req.ScheduleDate); err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TopicWorkscheduleDetailCreated, events.WorkscheduleDetailCreated{
		DetailID:       detail.ID,
		WorkscheduleID: detail.WorkscheduleID,
		UserID:         detail.UserID,
		ScheduleDate:   detail.ScheduleDate,
	})

	return s.toResponse(detail), nil
}

// BulkCreate verifies references, anchors every entry's time of day onto the
// schedule date, and persists the detail with all intervals in one save.
func (s *WorkscheduleDetailService) BulkCreate(req *BulkCreateWorkscheduleDetailRequest) (*WorkscheduleDetailResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.checkReferences(req.UserID, req.WorkscheduleID); err != nil {
		return nil, err
	}

	var total int64
	timeDetails := make([]models.WorkscheduleTimeDetail, 0, len(req.Entries))
	for _, entry := range req.Entries {
		start := AnchorToDate(req.ScheduleDate, entry.StartTime)
		end := AnchorToDate(req.ScheduleDate, entry.EndTime)
		if !end.After(start) {
			return nil, apperrors.ErrInvalidTimeRange
		}
		duration := DurationSeconds(start, end)
		total += duration
		timeDetails = append(timeDetails, models.WorkscheduleTimeDetail{
			StartTime: start,
			EndTime:   end,
			Duration:  duration,
		})
	}

	detail := &models.WorkscheduleDetail{
		WorkscheduleID: req.WorkscheduleID,
		UserID:         req.UserID,
		ScheduleDate:   req.ScheduleDate,
		Duration:       total,
		TimeDetails:    timeDetails,
	}
	if err := s.repo.Create(detail); err != nil {
		return nil, fmt.Errorf("failed to create workschedule detail: %w", err)
	}

	if err := s.recalculate(req.WorkscheduleID, req.ScheduleDate); err != nil {
		return nil, err
	}

	s.publisher.Publish(events.TopicWorkscheduleDetailCreated, events.WorkscheduleDetailCreated{
		DetailID:       detail.ID,
		WorkscheduleID: detail.WorkscheduleID,
		UserID:         detail.UserID,
		ScheduleDate:   detail.ScheduleDate,
	})

	return s.toResponse(detail), nil
}

// GetByID retrieves a workschedule detail by ID
func (s *WorkscheduleDetailService) GetByID(id uuid.UUID) (*WorkscheduleDetailResponse, error) {
	detail, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkscheduleDetailNotFound
		}
		return nil, fmt.Errorf("failed to get workschedule detail: %w", err)
	}
	return s.toResponse(detail), nil
}

// ListByScheduleAndUser retrieves one user's details within a workschedule
func (s *WorkscheduleDetailService) ListByScheduleAndUser(scheduleID, userID uuid.UUID, page, pageSize int) (*WorkscheduleDetailListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	details, total, err := s.repo.GetByWorkscheduleAndUser(scheduleID, userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list workschedule details: %w", err)
	}

	responses := make([]WorkscheduleDetailResponse, len(details))
	for i, detail := range details {
		responses[i] = *s.toResponse(&detail)
	}

	return &WorkscheduleDetailListResponse{
		Details:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a detail. Moving the schedule date
// re-anchors the detail's time intervals onto the new date and recalculates
// both the old and the new ISO week.
func (s *WorkscheduleDetailService) Update(id uuid.UUID, req *UpdateWorkscheduleDetailRequest) (*WorkscheduleDetailResponse, error) {
	detail, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkscheduleDetailNotFound
		}
		return nil, fmt.Errorf("failed to get workschedule detail: %w", err)
	}

	previousDate := detail.ScheduleDate

	if req.ScheduleDate != nil && !sameDate(*req.ScheduleDate, previousDate) {
		detail.ScheduleDate = *req.ScheduleDate
		for i := range detail.TimeDetails {
			td := &detail.TimeDetails[i]
			td.StartTime = AnchorToDate(detail.ScheduleDate, td.StartTime)
			td.EndTime = AnchorToDate(detail.ScheduleDate, td.EndTime)
			if err := s.timeDetailRepo.Update(td); err != nil {
				return nil, fmt.Errorf("failed to move time detail: %w", err)
			}
		}
	}

	if err := s.repo.Update(detail); err != nil {
		return nil, fmt.Errorf("failed to update workschedule detail: %w", err)
	}

	if err := s.recalculate(detail.WorkscheduleID, previousDate); err != nil {
		return nil, err
	}
	if !sameWeek(previousDate, detail.ScheduleDate) {
		if err := s.recalculate(detail.WorkscheduleID, detail.ScheduleDate); err != nil {
			return nil, err
		}
	}

	return s.toResponse(detail), nil
}

// UpdateTimeDetail applies a partial update to one time interval, re-derives
// its duration, refreshes the parent detail's aggregate and recalculates the
// owning workschedule's week.
func (s *WorkscheduleDetailService) UpdateTimeDetail(id uuid.UUID, req *UpdateTimeDetailRequest) (*TimeDetailResponse, error) {
	timeDetail, err := s.timeDetailRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkscheduleTimeDetailNotFound
		}
		return nil, fmt.Errorf("failed to get time detail: %w", err)
	}

	if req.StartTime != nil {
		timeDetail.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		timeDetail.EndTime = *req.EndTime
	}
	if !timeDetail.EndTime.After(timeDetail.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	timeDetail.Duration = DurationSeconds(timeDetail.StartTime, timeDetail.EndTime)

	if err := s.timeDetailRepo.Update(timeDetail); err != nil {
		return nil, fmt.Errorf("failed to update time detail: %w", err)
	}

	// Refresh the parent aggregate from its children
	detail, err := s.repo.GetByID(timeDetail.WorkscheduleDetailID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent detail: %w", err)
	}
	var total int64
	for _, td := range detail.TimeDetails {
		total += td.Duration
	}
	detail.Duration = total
	if err := s.repo.Update(detail); err != nil {
		return nil, fmt.Errorf("failed to update parent detail: %w", err)
	}

	if err := s.recalculate(detail.WorkscheduleID, timeDetail.StartTime); err != nil {
		return nil, err
	}

	return &TimeDetailResponse{
		ID:        timeDetail.ID,
		StartTime: timeDetail.StartTime.Format(time.RFC3339),
		EndTime:   timeDetail.EndTime.Format(time.RFC3339),
		Duration:  timeDetail.Duration,
	}, nil
}

// BulkRemove deletes the details matching ids scoped by user and
// workschedule, then recalculates every ISO week the deleted rows touched.
// Ids outside the scope are skipped without error and the returned slice
// reflects only what was actually deleted.
func (s *WorkscheduleDetailService) BulkRemove(req *BulkRemoveWorkscheduleDetailsRequest) ([]DeletedWorkscheduleDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	removed, err := s.repo.DeleteScoped(req.IDs, req.UserID, req.WorkscheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove workschedule details: %w", err)
	}

	deleted := make([]DeletedWorkscheduleDetail, len(removed))
	weeks := make(map[time.Time]time.Time)
	for i, detail := range removed {
		deleted[i] = DeletedWorkscheduleDetail{
			ID:           detail.ID,
			ScheduleDate: detail.ScheduleDate.Format("2006-01-02"),
		}
		weekStart, _ := WeekBounds(detail.ScheduleDate)
		weeks[weekStart] = detail.ScheduleDate
	}

	for _, anchor := range weeks {
		if err := s.recalculate(req.WorkscheduleID, anchor); err != nil {
			return nil, err
		}
	}

	return deleted, nil
}

// recalculate re-sums the allocated seconds of the ISO week containing anchor
func (s *WorkscheduleDetailService) recalculate(scheduleID uuid.UUID, anchor time.Time) error {
	weekStart, weekEnd := WeekBounds(anchor)
	if err := s.scheduleRepo.RecalculateAllocatedHours(scheduleID, weekStart, weekEnd); err != nil {
		return fmt.Errorf("failed to recalculate payroll hours: %w", err)
	}
	return nil
}

// checkReferences verifies the user and workschedule exist before any write
func (s *WorkscheduleDetailService) checkReferences(userID, scheduleID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to verify user: %w", err)
	}
	if _, err := s.scheduleRepo.GetByID(scheduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkscheduleNotFound
		}
		return fmt.Errorf("failed to verify workschedule: %w", err)
	}
	return nil
}

func (s *WorkscheduleDetailService) toResponse(detail *models.WorkscheduleDetail) *WorkscheduleDetailResponse {
	timeDetails := make([]TimeDetailResponse, len(detail.TimeDetails))
	for i, td := range detail.TimeDetails {
		timeDetails[i] = TimeDetailResponse{
			ID:        td.ID,
			StartTime: td.StartTime.Format(time.RFC3339),
			EndTime:   td.EndTime.Format(time.RFC3339),
			Duration:  td.Duration,
		}
	}

	return &WorkscheduleDetailResponse{
		ID:             detail.ID,
		WorkscheduleID: detail.WorkscheduleID,
		UserID:         detail.UserID,
		ScheduleDate:   detail.ScheduleDate.Format("2006-01-02"),
		Duration:       detail.Duration,
		TimeDetails:    timeDetails,
		CreatedAt:      detail.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      detail.UpdatedAt.Format(time.RFC3339),
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sameWeek(a, b time.Time) bool {
	aStart, _ := WeekBounds(a)
	bStart, _ := WeekBounds(b)
	return aStart.Equal(bStart)
}
