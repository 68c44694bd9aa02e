package repository

import (
	"time"

	"payroll-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// WorkscheduleRepository handles database operations for workschedules
type WorkscheduleRepository struct {
	db *gorm.DB
}

// NewWorkscheduleRepository creates a new workschedule repository
func NewWorkscheduleRepository(db *gorm.DB) *WorkscheduleRepository {
	return &WorkscheduleRepository{db: db}
}

// Create creates a new workschedule
func (r *WorkscheduleRepository) Create(schedule *models.Workschedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a workschedule by ID
func (r *WorkscheduleRepository) GetByID(id uuid.UUID) (*models.Workschedule, error) {
	var schedule models.Workschedule
	err := r.db.First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetByCompanyID retrieves all workschedules of a company with pagination
func (r *WorkscheduleRepository) GetByCompanyID(companyID uuid.UUID, limit, offset int) ([]models.Workschedule, int64, error) {
	var schedules []models.Workschedule
	var total int64

	if err := r.db.Model(&models.Workschedule{}).Where("company_id = ?", companyID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("company_id = ?", companyID).Order("start_date DESC").Limit(limit).Offset(offset).Find(&schedules).Error
	return schedules, total, err
}

// FindByCompanyAndWindow retrieves the workschedule covering an exact
// (company, start date, end date) window. Used as the duplicate pre-check on
// creation; the composite unique index backs it up under concurrent creators.
func (r *WorkscheduleRepository) FindByCompanyAndWindow(companyID uuid.UUID, startDate, endDate time.Time) (*models.Workschedule, error) {
	var schedule models.Workschedule
	err := r.db.First(&schedule,
		"company_id = ? AND start_date = ? AND end_date = ?",
		companyID, startDate.Format(dateLayout), endDate.Format(dateLayout),
	).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Update updates a workschedule
func (r *WorkscheduleRepository) Update(schedule *models.Workschedule) error {
	return r.db.Save(schedule).Error
}

// Delete deletes a workschedule
func (r *WorkscheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Workschedule{}, "id = ?", id).Error
}

// RecalculateAllocatedHours recomputes payroll_allocated_hours (seconds) for a
// workschedule as the sum of all time-detail durations whose start time falls
// inside [weekStart, weekEnd]. The sum and the write happen in one UPDATE
// statement, so concurrent detail mutations in the same week cannot overwrite
// each other's contribution.
func (r *WorkscheduleRepository) RecalculateAllocatedHours(scheduleID uuid.UUID, weekStart, weekEnd time.Time) error {
	return r.db.Exec(`
		UPDATE workschedules
		SET payroll_allocated_hours = (
			SELECT COALESCE(SUM(wtd.duration), 0)
			FROM workschedule_time_details wtd
			JOIN workschedule_details wd ON wd.id = wtd.workschedule_detail_id
			WHERE wd.workschedule_id = ?
			  AND wtd.start_time >= ?
			  AND wtd.start_time <= ?
		), updated_at = NOW()
		WHERE id = ?`,
		scheduleID, weekStart, weekEnd, scheduleID,
	).Error
}

// OpenDue transitions every workschedule whose start date is the given day and
// whose status is not yet Open. Returns the number of rows transitioned.
// Idempotent: rerunning on the same day matches no further rows.
func (r *WorkscheduleRepository) OpenDue(today time.Time) (int64, error) {
	res := r.db.Exec(
		`UPDATE workschedules SET status = ?, updated_at = NOW() WHERE status <> ? AND start_date = ?`,
		models.WorkscheduleStatusOpen, models.WorkscheduleStatusOpen, today.Format(dateLayout),
	)
	return res.RowsAffected, res.Error
}

// CloseDue transitions every workschedule whose end date is the given day and
// whose status is not yet Closed. Returns the number of rows transitioned.
func (r *WorkscheduleRepository) CloseDue(today time.Time) (int64, error) {
	res := r.db.Exec(
		`UPDATE workschedules SET status = ?, updated_at = NOW() WHERE status <> ? AND end_date = ?`,
		models.WorkscheduleStatusClosed, models.WorkscheduleStatusClosed, today.Format(dateLayout),
	)
	return res.RowsAffected, res.Error
}
