package repository

import (
	"payroll-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkscheduleDetailRepository handles database operations for workschedule details
type WorkscheduleDetailRepository struct {
	db *gorm.DB
}

// NewWorkscheduleDetailRepository creates a new workschedule detail repository
func NewWorkscheduleDetailRepository(db *gorm.DB) *WorkscheduleDetailRepository {
	return &WorkscheduleDetailRepository{db: db}
}

// CreateWithTimeDetail inserts a detail row and its first time-detail row in
// one transaction. If the second insert fails the first is rolled back, so a
// detail without its interval is never observable.
func (r *WorkscheduleDetailRepository) CreateWithTimeDetail(detail *models.WorkscheduleDetail, timeDetail *models.WorkscheduleTimeDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		timeDetail.WorkscheduleDetailID = detail.ID
		return tx.Create(timeDetail).Error
	})
}

// Create persists a detail together with any time details attached to it.
// GORM cascades the child inserts inside its own transaction.
func (r *WorkscheduleDetailRepository) Create(detail *models.WorkscheduleDetail) error {
	return r.db.Create(detail).Error
}

// GetByID retrieves a workschedule detail by ID with its time details
func (r *WorkscheduleDetailRepository) GetByID(id uuid.UUID) (*models.WorkscheduleDetail, error) {
	var detail models.WorkscheduleDetail
	err := r.db.Preload("TimeDetails").First(&detail, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetByWorkscheduleAndUser retrieves details for one user within a workschedule
func (r *WorkscheduleDetailRepository) GetByWorkscheduleAndUser(scheduleID, userID uuid.UUID, limit, offset int) ([]models.WorkscheduleDetail, int64, error) {
	var details []models.WorkscheduleDetail
	var total int64

	query := r.db.Model(&models.WorkscheduleDetail{}).Where("workschedule_id = ? AND user_id = ?", scheduleID, userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("TimeDetails").
		Where("workschedule_id = ? AND user_id = ?", scheduleID, userID).
		Order("schedule_date ASC").Limit(limit).Offset(offset).Find(&details).Error
	return details, total, err
}

// Update updates a workschedule detail
func (r *WorkscheduleDetailRepository) Update(detail *models.WorkscheduleDetail) error {
	return r.db.Save(detail).Error
}

// DeleteScoped deletes the details whose id is in ids AND that belong to the
// given user and workschedule, returning the matched rows as they were before
// deletion. Ids outside the scope are silently skipped; the scoping acts as an
// ownership filter, not an existence check.
func (r *WorkscheduleDetailRepository) DeleteScoped(ids []uuid.UUID, userID, scheduleID uuid.UUID) ([]models.WorkscheduleDetail, error) {
	var matched []models.WorkscheduleDetail

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id IN ? AND user_id = ? AND workschedule_id = ?", ids, userID, scheduleID).
			Find(&matched).Error; err != nil {
			return err
		}
		if len(matched) == 0 {
			return nil
		}

		matchedIDs := make([]uuid.UUID, len(matched))
		for i, d := range matched {
			matchedIDs[i] = d.ID
		}
		// Child time details go with the parent via the FK cascade.
		return tx.Delete(&models.WorkscheduleDetail{}, "id IN ?", matchedIDs).Error
	})
	if err != nil {
		return nil, err
	}
	return matched, nil
}
