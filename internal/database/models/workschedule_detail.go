package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkscheduleDetail represents one user's record for one calendar date
// within a workschedule. Duration is the aggregate of its time details in
// seconds, maintained by the service layer.
type WorkscheduleDetail struct {
	BaseModel
	WorkscheduleID uuid.UUID `json:"workschedule_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	ScheduleDate   time.Time `json:"schedule_date" gorm:"type:date;not null;index" validate:"required"`
	Duration       int64     `json:"duration" gorm:"not null;default:0"`

	// Relationships
	Workschedule Workschedule             `json:"workschedule,omitempty" gorm:"foreignKey:WorkscheduleID;constraint:OnDelete:CASCADE"`
	User         User                     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TimeDetails  []WorkscheduleTimeDetail `json:"time_details,omitempty" gorm:"foreignKey:WorkscheduleDetailID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for WorkscheduleDetail
func (WorkscheduleDetail) TableName() string {
	return "workschedule_details"
}
