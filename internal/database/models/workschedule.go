package models

import (
	"time"

	"github.com/google/uuid"
)

// Workschedule represents a company-scoped payroll period.
// PayrollAllocatedHours and PayrollUsageHours are denormalized totals kept in
// seconds; allocated hours are recomputed on every detail mutation.
type Workschedule struct {
	BaseModel
	CompanyID uuid.UUID          `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_workschedules_company_window" validate:"required"`
	StartDate time.Time          `json:"start_date" gorm:"type:date;not null;uniqueIndex:idx_workschedules_company_window" validate:"required"`
	EndDate   time.Time          `json:"end_date" gorm:"type:date;not null;uniqueIndex:idx_workschedules_company_window" validate:"required"`
	Status    WorkscheduleStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending'"`

	PayrollAllocatedHours int64 `json:"payroll_allocated_hours" gorm:"not null;default:0"`
	PayrollUsageHours     int64 `json:"payroll_usage_hours" gorm:"not null;default:0"`

	// Relationships
	Company Company              `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
	Details []WorkscheduleDetail `json:"details,omitempty" gorm:"foreignKey:WorkscheduleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Workschedule
func (Workschedule) TableName() string {
	return "workschedules"
}
