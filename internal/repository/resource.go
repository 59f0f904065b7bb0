package repository

import (
	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create creates a new resource
func (r *ResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

// GetByID retrieves a resource by ID with its author
func (r *ResourceRepository) GetByID(id uuid.UUID) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.Preload("AddedBy").First(&resource, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetByURL retrieves a resource by its URL
func (r *ResourceRepository) GetByURL(url string) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, "url = ?", url).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// Update updates a resource
func (r *ResourceRepository) Update(resource *models.Resource) error {
	return r.db.Save(resource).Error
}

// Delete removes a resource
func (r *ResourceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Resource{}, "id = ?", id).Error
}

// List retrieves resources matching the filter, newest first
func (r *ResourceRepository) List(filter ResourceFilter) ([]models.Resource, error) {
	query := r.db.Preload("AddedBy")

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", filter.Level)
	}
	if filter.Topic != "" {
		query = query.Where("? = ANY(topics)", filter.Topic)
	}
	if filter.Language != "" {
		query = query.Where("? = ANY(languages)", filter.Language)
	}
	if filter.Framework != "" {
		query = query.Where("? = ANY(frameworks)", filter.Framework)
	}
	if filter.SDG != 0 {
		query = query.Where("? = ANY(sdgs)", filter.SDG)
	}

	var resources []models.Resource
	err := query.Order("created_at desc").Find(&resources).Error
	return resources, err
}

// Match retrieves resources whose SDG, language or framework tags
// overlap the given sets, best rated first. Empty criteria degrade to
// matching anything rather than nothing.
func (r *ResourceRepository) Match(sdgs pq.Int64Array, languages, frameworks pq.StringArray, limit int) ([]models.Resource, error) {
	query := r.db.Preload("AddedBy")

	var conditions *gorm.DB
	if len(sdgs) > 0 {
		conditions = r.db.Where("sdgs && ?", sdgs)
	}
	if len(languages) > 0 {
		cond := r.db.Where("languages && ?", languages)
		if conditions == nil {
			conditions = cond
		} else {
			conditions = conditions.Or(cond)
		}
	}
	if len(frameworks) > 0 {
		cond := r.db.Where("frameworks && ?", frameworks)
		if conditions == nil {
			conditions = cond
		} else {
			conditions = conditions.Or(cond)
		}
	}
	if conditions != nil {
		query = query.Where(conditions)
	}

	var resources []models.Resource
	err := query.Order("rating desc").Limit(limit).Find(&resources).Error
	return resources, err
}
