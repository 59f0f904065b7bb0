package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project represents a team's showcase project. The unique index on
// TeamID enforces at most one project per team at the store level.
type Project struct {
	BaseModel
	Title       string        `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description string        `json:"description" gorm:"type:text"`
	Thumbnail   string        `json:"thumbnail" gorm:"size:500"`
	GithubRepo  string        `json:"github_repo" gorm:"size:500" validate:"omitempty,url"`
	SDGs        pq.Int64Array `json:"sdgs" gorm:"type:integer[]" validate:"dive,gte=1,lte=17"`
	TeamID      uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`

	// Relationships
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
