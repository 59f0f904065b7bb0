package repository

import (
	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MentorRepository handles database operations for mentors
type MentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

// Create creates a new mentor
func (r *MentorRepository) Create(mentor *models.Mentor) error {
	return r.db.Create(mentor).Error
}

// GetByID retrieves a mentor by ID
func (r *MentorRepository) GetByID(id uuid.UUID) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.First(&mentor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// GetByEmail retrieves a mentor by email
func (r *MentorRepository) GetByEmail(email string) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.First(&mentor, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// Update updates a mentor
func (r *MentorRepository) Update(mentor *models.Mentor) error {
	return r.db.Save(mentor).Error
}

// GetVerified retrieves all verified mentors ordered by first name
func (r *MentorRepository) GetVerified() ([]models.Mentor, error) {
	var mentors []models.Mentor
	err := r.db.Where("is_verified = ?", true).Order("first_name asc").Find(&mentors).Error
	return mentors, err
}

// GetFirst retrieves any one mentor, used as the attribution fallback
// for generated resources
func (r *MentorRepository) GetFirst() (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.Order("created_at asc").First(&mentor).Error
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}
