package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ResourceType classifies a learning resource
type ResourceType string

const (
	ResourceTypeArticle       ResourceType = "article"
	ResourceTypeVideo         ResourceType = "video"
	ResourceTypeTutorial      ResourceType = "tutorial"
	ResourceTypeDocumentation ResourceType = "documentation"
	ResourceTypeTool          ResourceType = "tool"
	ResourceTypeLibrary       ResourceType = "library"
	ResourceTypeGithub        ResourceType = "github"
	ResourceTypeBook          ResourceType = "book"
	ResourceTypeCourse        ResourceType = "course"
	ResourceTypeOther         ResourceType = "other"
)

// ResourceLevel is the difficulty of a resource
type ResourceLevel string

const (
	ResourceLevelBeginner     ResourceLevel = "beginner"
	ResourceLevelIntermediate ResourceLevel = "intermediate"
	ResourceLevelAdvanced     ResourceLevel = "advanced"
)

// Resource represents a globally shared learning resource, either
// mentor-authored or generated by the matcher's cache-fill fallback.
// Resources are matched to teams by tag overlap, not a stored edge.
// The unique index on URL keeps concurrent generation runs from
// inserting the same canned resource twice.
type Resource struct {
	BaseModel
	Title       string         `json:"title" gorm:"not null;size:300" validate:"required,max=300"`
	Description string         `json:"description" gorm:"type:text;not null" validate:"required"`
	Type        ResourceType   `json:"type" gorm:"type:varchar(20);not null" validate:"required,oneof=article video tutorial documentation tool library github book course other"`
	URL         string         `json:"url" gorm:"uniqueIndex;not null;size:500" validate:"required,url"`
	Topics      pq.StringArray `json:"topics" gorm:"type:text[]"`
	Languages   pq.StringArray `json:"languages" gorm:"type:text[]"`
	Frameworks  pq.StringArray `json:"frameworks" gorm:"type:text[]"`
	SDGs        pq.Int64Array  `json:"sdgs" gorm:"type:integer[]" validate:"dive,gte=1,lte=17"`
	Level       ResourceLevel  `json:"level" gorm:"type:varchar(20);not null;default:'intermediate'" validate:"omitempty,oneof=beginner intermediate advanced"`
	Rating      int            `json:"rating" gorm:"not null;default:5" validate:"omitempty,gte=1,lte=5"`
	AddedByID   uuid.UUID      `json:"added_by_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	AddedBy *Mentor `json:"added_by,omitempty" gorm:"foreignKey:AddedByID"`
}

// TableName returns the table name for Resource
func (Resource) TableName() string {
	return "resources"
}
