package models

import "github.com/google/uuid"

// User represents an employee of a company
type User struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_users_company_email" validate:"required"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex:idx_users_company_email" validate:"required,email"`
	FirstName string    `json:"first_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	LastName  string    `json:"last_name" gorm:"size:100" validate:"max=100"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
