package repository

import (
	"time"

	"payroll-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkscheduleTimeDetailRepository handles database operations for time details
type WorkscheduleTimeDetailRepository struct {
	db *gorm.DB
}

// NewWorkscheduleTimeDetailRepository creates a new time detail repository
func NewWorkscheduleTimeDetailRepository(db *gorm.DB) *WorkscheduleTimeDetailRepository {
	return &WorkscheduleTimeDetailRepository{db: db}
}

// Create creates a new time detail
func (r *WorkscheduleTimeDetailRepository) Create(timeDetail *models.WorkscheduleTimeDetail) error {
	return r.db.Create(timeDetail).Error
}

// GetByID retrieves a time detail by ID
func (r *WorkscheduleTimeDetailRepository) GetByID(id uuid.UUID) (*models.WorkscheduleTimeDetail, error) {
	var timeDetail models.WorkscheduleTimeDetail
	err := r.db.First(&timeDetail, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &timeDetail, nil
}

// GetByDetailID retrieves all time details of a workschedule detail
func (r *WorkscheduleTimeDetailRepository) GetByDetailID(detailID uuid.UUID) ([]models.WorkscheduleTimeDetail, error) {
	var timeDetails []models.WorkscheduleTimeDetail
	err := r.db.Where("workschedule_detail_id = ?", detailID).Order("start_time ASC").Find(&timeDetails).Error
	return timeDetails, err
}

// Update updates a time detail
func (r *WorkscheduleTimeDetailRepository) Update(timeDetail *models.WorkscheduleTimeDetail) error {
	return r.db.Save(timeDetail).Error
}

// SumForUserWeek returns the total worked seconds of one user within a
// workschedule for intervals starting inside [weekStart, weekEnd]. Used for
// the weekly reminder notification.
func (r *WorkscheduleTimeDetailRepository) SumForUserWeek(scheduleID, userID uuid.UUID, weekStart, weekEnd time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.WorkscheduleTimeDetail{}).
		Joins("JOIN workschedule_details wd ON wd.id = workschedule_time_details.workschedule_detail_id").
		Where("wd.workschedule_id = ? AND wd.user_id = ?", scheduleID, userID).
		Where("workschedule_time_details.start_time >= ? AND workschedule_time_details.start_time <= ?", weekStart, weekEnd).
		Select("COALESCE(SUM(workschedule_time_details.duration), 0)").
		Scan(&total).Error
	return total, err
}
