package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkscheduleTimeDetail represents one contiguous clock-in/out interval
// within a workschedule detail. Duration is derived as end minus start in
// whole seconds.
type WorkscheduleTimeDetail struct {
	BaseModel
	WorkscheduleDetailID uuid.UUID `json:"workschedule_detail_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartTime            time.Time `json:"start_time" gorm:"not null" validate:"required"`
	EndTime              time.Time `json:"end_time" gorm:"not null" validate:"required"`
	Duration             int64     `json:"duration" gorm:"not null;default:0"`
}

// TableName returns the table name for WorkscheduleTimeDetail
func (WorkscheduleTimeDetail) TableName() string {
	return "workschedule_time_details"
}
