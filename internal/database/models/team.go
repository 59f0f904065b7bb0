package models

import (
	"github.com/google/uuid"
)

// Team represents a student team. The join code is immutable after
// creation and unique across all teams. Members are the students whose
// TeamID points here; the owner is always one of them.
type Team struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	TeamCode    string     `json:"team_code" gorm:"uniqueIndex;not null;size:8"`
	Tagline     string     `json:"tagline" gorm:"size:200" validate:"max=200"`
	Description string     `json:"description" gorm:"type:text"`
	OwnerID     uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	MentorID    *uuid.UUID `json:"mentor_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Owner        *Student          `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Mentor       *Mentor           `json:"mentor,omitempty" gorm:"foreignKey:MentorID;constraint:OnDelete:SET NULL"`
	Members      []Student         `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	JoinRequests []TeamJoinRequest `json:"join_requests,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Project      *Project          `json:"project,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamJoinRequest represents a pending, owner-approvable request by a
// student to join a team. Distinct from the code-based direct join path.
type TeamJoinRequest struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_join_requests_team_student"`
	StudentID uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_join_requests_team_student"`

	// Relationships
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamJoinRequest
func (TeamJoinRequest) TableName() string {
	return "team_join_requests"
}
