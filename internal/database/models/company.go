package models

// Company represents a tenant company that owns users and workschedules
type Company struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	ContactEmail string `json:"contact_email" gorm:"size:255" validate:"omitempty,email"`
	Archived     bool   `json:"archived" gorm:"default:false"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
