package models

import (
	"time"

	"github.com/lib/pq"
)

// Mentor represents a mentor account. Mentors author resources and are
// assigned to teams by admins once verified.
type Mentor struct {
	BaseModel
	FirstName     string         `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName      string         `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password      string         `json:"-" gorm:"not null;size:100"`
	Expertise     pq.StringArray `json:"expertise" gorm:"type:text[]" validate:"required,min=1"`
	Experience    int            `json:"experience" gorm:"not null" validate:"gte=0"`
	Bio           string         `json:"bio" gorm:"type:text;not null" validate:"required"`
	AgreedToTerms bool           `json:"agreed_to_terms" gorm:"not null;default:false"`
	ProfilePic    string         `json:"profile_pic" gorm:"size:500"`
	IsVerified    bool           `json:"is_verified" gorm:"not null;default:false"`
	OTP           string         `json:"-" gorm:"size:10"`
	OTPExpiry     *time.Time     `json:"-"`

	// Relationships
	Teams     []Team     `json:"teams,omitempty" gorm:"foreignKey:MentorID"`
	Resources []Resource `json:"resources,omitempty" gorm:"foreignKey:AddedByID"`
}

// TableName returns the table name for Mentor
func (Mentor) TableName() string {
	return "mentors"
}

// FullName returns the mentor's display name
func (m *Mentor) FullName() string {
	return m.FirstName + " " + m.LastName
}
