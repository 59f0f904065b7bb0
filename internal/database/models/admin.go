package models

// Admin represents an administrator account. Admins are created once via
// the setup endpoint and manage mentor assignment.
type Admin struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password string `json:"-" gorm:"not null;size:100"`
	Role     string `json:"role" gorm:"not null;size:20;default:'admin'"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
