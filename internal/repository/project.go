package repository

import (
	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// CreateAndLink creates a project. The unique index on team_id is the
// real guard against a team acquiring a second project under
// concurrent requests.
func (r *ProjectRepository) CreateAndLink(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetDetail retrieves a project with its team, owner, mentor and
// members populated for the detail page
func (r *ProjectRepository) GetDetail(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.
		Preload("Team.Owner").
		Preload("Team.Mentor").
		Preload("Team.Members").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects with team info for catalog browsing
func (r *ProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("Team").Order("created_at desc").Find(&projects).Error
	return projects, err
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project and its comments
func (r *ProjectRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Comment{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

// GetByTeamID retrieves the project linked to a team
func (r *ProjectRepository) GetByTeamID(teamID uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "team_id = ?", teamID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}
