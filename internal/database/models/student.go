package models

import (
	"time"

	"github.com/google/uuid"
)

// Student represents a student account. Team membership is stored only
// here (TeamID); a team's member list is derived by query, never mirrored.
type Student struct {
	BaseModel
	FirstName     string     `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName      string     `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email         string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password      string     `json:"-" gorm:"not null;size:100"`
	Semester      string     `json:"semester" gorm:"not null;size:20" validate:"required,max=20"`
	AgreedToTerms bool       `json:"agreed_to_terms" gorm:"not null;default:false"`
	ProfilePic    string     `json:"profile_pic" gorm:"size:500"`
	IsVerified    bool       `json:"is_verified" gorm:"not null;default:false"`
	OTP           string     `json:"-" gorm:"size:10"`
	OTPExpiry     *time.Time `json:"-"`
	TeamID        *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Student
func (Student) TableName() string {
	return "students"
}

// FullName returns the student's display name
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
