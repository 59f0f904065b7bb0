package repository

import (
	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for project comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByProject retrieves all comments on a project, newest first
func (r *CommentRepository) ListByProject(projectID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("project_id = ?", projectID).Order("created_at desc").Find(&comments).Error
	return comments, err
}

// Delete removes a comment
func (r *CommentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}
