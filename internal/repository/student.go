package repository

import (
	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create creates a new student
func (r *StudentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Update updates a student
func (r *StudentRepository) Update(student *models.Student) error {
	return r.db.Save(student).Error
}
