package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/repository"
)

// ProjectService handles the one-project-per-team showcase catalog
type ProjectService struct {
	projects  repository.ProjectRepositoryInterface
	teams     repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(projects repository.ProjectRepositoryInterface, teams repository.TeamRepositoryInterface, validate *validator.Validate) *ProjectService {
	return &ProjectService{
		projects:  projects,
		teams:     teams,
		validator: validate,
	}
}

// CreateProjectRequest represents the data needed to create a project
type CreateProjectRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Thumbnail   string  `json:"thumbnail" validate:"omitempty,url,max=500"`
	GithubRepo  string  `json:"github_repo" validate:"omitempty,url,max=500"`
	SDGs        []int64 `json:"sdgs" validate:"dive,gte=1,lte=17"`
}

// UpdateProjectRequest carries optional project updates
type UpdateProjectRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Thumbnail   *string  `json:"thumbnail" validate:"omitempty,url,max=500"`
	GithubRepo  *string  `json:"github_repo" validate:"omitempty,url,max=500"`
	SDGs        *[]int64 `json:"sdgs" validate:"omitempty,dive,gte=1,lte=17"`
}

// CreateProject creates the team's showcase project. Owner only; a team
// holds at most one project, enforced by the unique index on team_id.
func (s *ProjectService) CreateProject(teamID, studentID uuid.UUID, req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	if team.OwnerID != studentID {
		return nil, apperrors.ErrNotTeamOwner
	}
	if _, err := s.projects.GetByTeamID(teamID); err == nil {
		return nil, apperrors.ErrProjectExists
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		GithubRepo:  req.GithubRepo,
		SDGs:        pq.Int64Array(req.SDGs),
		TeamID:      teamID,
	}
	if err := s.projects.CreateAndLink(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetProject returns a project with team, owner, mentor and members
// expanded. The team's join code is withheld from this view.
func (s *ProjectService) GetProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetDetail(id)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}
	if project.Team != nil {
		project.Team.TeamCode = ""
	}
	return project, nil
}

// GetAllProjects lists all projects for catalog browsing
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	projects, err := s.projects.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

// UpdateProject edits the project. Team owner only.
func (s *ProjectService) UpdateProject(projectID, studentID uuid.UUID, req *UpdateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.ownedProject(projectID, studentID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Thumbnail != nil {
		project.Thumbnail = *req.Thumbnail
	}
	if req.GithubRepo != nil {
		project.GithubRepo = *req.GithubRepo
	}
	if req.SDGs != nil {
		project.SDGs = pq.Int64Array(*req.SDGs)
	}

	if err := s.projects.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// DeleteProject removes the project and its comments. Team owner only.
func (s *ProjectService) DeleteProject(projectID, studentID uuid.UUID) error {
	project, err := s.ownedProject(projectID, studentID)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(project.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// GetProjectByTeam returns a team's project
func (s *ProjectService) GetProjectByTeam(teamID uuid.UUID) (*models.Project, error) {
	if _, err := s.teams.GetByID(teamID); err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	project, err := s.projects.GetByTeamID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamProjectNotFound
	}
	return project, nil
}

func (s *ProjectService) ownedProject(projectID, studentID uuid.UUID) (*models.Project, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}
	team, err := s.teams.GetByID(project.TeamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	if team.OwnerID != studentID {
		return nil, apperrors.ErrNotTeamOwner
	}
	return project, nil
}
