package models

import (
	"github.com/google/uuid"
)

// Comment is an entry on a project's discussion board. Deletion is
// gated on the author's email matching server-side.
type Comment struct {
	BaseModel
	ProjectID  uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserEmail  string    `json:"user_email" gorm:"not null;size:255" validate:"required,email"`
	UserName   string    `json:"user_name" gorm:"not null;size:200" validate:"required,max=200"`
	ProfilePic string    `json:"profile_pic" gorm:"size:500"`
	Text       string    `json:"text" gorm:"type:text;not null" validate:"required"`

	// Relationships
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
