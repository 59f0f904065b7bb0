package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/logger"
	"campus-collab-backend/internal/matcher"
	"campus-collab-backend/internal/repository"
)

const matchLimit = 20

// ResourceService handles the mentor-authored resource catalog and the
// tag-overlap matcher with its generate-on-miss fallback
type ResourceService struct {
	resources repository.ResourceRepositoryInterface
	teams     repository.TeamRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	mentors   repository.MentorRepositoryInterface
	validator *validator.Validate
	logger    *logger.Logger
}

// NewResourceService creates a new resource service
func NewResourceService(resources repository.ResourceRepositoryInterface, teams repository.TeamRepositoryInterface, projects repository.ProjectRepositoryInterface, mentors repository.MentorRepositoryInterface, validate *validator.Validate, log *logger.Logger) *ResourceService {
	return &ResourceService{
		resources: resources,
		teams:     teams,
		projects:  projects,
		mentors:   mentors,
		validator: validate,
		logger:    log,
	}
}

// CreateResourceRequest represents the data needed to add a resource
type CreateResourceRequest struct {
	Title       string   `json:"title" validate:"required,max=300"`
	Description string   `json:"description" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=article video tutorial documentation tool library github book course other"`
	URL         string   `json:"url" validate:"required,url,max=500"`
	Topics      []string `json:"topics"`
	Languages   []string `json:"languages"`
	Frameworks  []string `json:"frameworks"`
	SDGs        []int64  `json:"sdgs" validate:"dive,gte=1,lte=17"`
	Level       string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Rating      int      `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// UpdateResourceRequest carries optional resource updates
type UpdateResourceRequest struct {
	Title       *string   `json:"title" validate:"omitempty,max=300"`
	Description *string   `json:"description"`
	Type        *string   `json:"type" validate:"omitempty,oneof=article video tutorial documentation tool library github book course other"`
	URL         *string   `json:"url" validate:"omitempty,url,max=500"`
	Topics      *[]string `json:"topics"`
	Languages   *[]string `json:"languages"`
	Frameworks  *[]string `json:"frameworks"`
	SDGs        *[]int64  `json:"sdgs" validate:"omitempty,dive,gte=1,lte=17"`
	Level       *string   `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Rating      *int      `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// MatchMetadata describes how a set of recommendations was produced
type MatchMetadata struct {
	TeamID             uuid.UUID `json:"team_id"`
	ProjectID          uuid.UUID `json:"project_id"`
	ProjectTitle       string    `json:"project_title"`
	DetectedLanguages  []string  `json:"detected_languages"`
	DetectedFrameworks []string  `json:"detected_frameworks"`
	SDGsMatched        []int64   `json:"sdgs_matched"`
	GeneratedResources bool      `json:"generated_resources"`
}

// MatchResult carries matched resources plus the detection metadata that
// produced them
type MatchResult struct {
	Resources []models.Resource `json:"resources"`
	Metadata  MatchMetadata     `json:"metadata"`
}

// CreateResource adds a mentor-authored resource
func (s *ResourceService) CreateResource(mentorID uuid.UUID, req *CreateResourceRequest) (*models.Resource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.mentors.GetByID(mentorID); err != nil {
		return nil, apperrors.ErrMentorsOnly
	}

	level := models.ResourceLevelIntermediate
	if req.Level != "" {
		level = models.ResourceLevel(req.Level)
	}
	rating := 5
	if req.Rating != 0 {
		rating = req.Rating
	}

	resource := &models.Resource{
		Title:       req.Title,
		Description: req.Description,
		Type:        models.ResourceType(req.Type),
		URL:         req.URL,
		Topics:      pq.StringArray(req.Topics),
		Languages:   pq.StringArray(req.Languages),
		Frameworks:  pq.StringArray(req.Frameworks),
		SDGs:        pq.Int64Array(req.SDGs),
		Level:       level,
		Rating:      rating,
		AddedByID:   mentorID,
	}
	if err := s.resources.Create(resource); err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return resource, nil
}

// GetResource retrieves a resource
func (s *ResourceService) GetResource(id uuid.UUID) (*models.Resource, error) {
	resource, err := s.resources.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrResourceNotFound
	}
	return resource, nil
}

// ListResources lists resources, optionally filtered
func (s *ResourceService) ListResources(filter repository.ResourceFilter) ([]models.Resource, error) {
	resources, err := s.resources.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// UpdateResource edits a resource. Only the mentor who added it may.
func (s *ResourceService) UpdateResource(resourceID, mentorID uuid.UUID, req *UpdateResourceRequest) (*models.Resource, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	resource, err := s.resources.GetByID(resourceID)
	if err != nil {
		return nil, apperrors.ErrResourceNotFound
	}
	if resource.AddedByID != mentorID {
		return nil, apperrors.ErrNotResourceOwner
	}

	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Description != nil {
		resource.Description = *req.Description
	}
	if req.Type != nil {
		resource.Type = models.ResourceType(*req.Type)
	}
	if req.URL != nil {
		resource.URL = *req.URL
	}
	if req.Topics != nil {
		resource.Topics = pq.StringArray(*req.Topics)
	}
	if req.Languages != nil {
		resource.Languages = pq.StringArray(*req.Languages)
	}
	if req.Frameworks != nil {
		resource.Frameworks = pq.StringArray(*req.Frameworks)
	}
	if req.SDGs != nil {
		resource.SDGs = pq.Int64Array(*req.SDGs)
	}
	if req.Level != nil {
		resource.Level = models.ResourceLevel(*req.Level)
	}
	if req.Rating != nil {
		resource.Rating = *req.Rating
	}

	if err := s.resources.Update(resource); err != nil {
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}
	return resource, nil
}

// DeleteResource removes a resource. Only the mentor who added it may.
func (s *ResourceService) DeleteResource(resourceID, mentorID uuid.UUID) error {
	resource, err := s.resources.GetByID(resourceID)
	if err != nil {
		return apperrors.ErrResourceNotFound
	}
	if resource.AddedByID != mentorID {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.resources.Delete(resource.ID); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}
	return nil
}

// MatchForTeam recommends resources for a team's project by tag overlap
// on SDGs and detected technologies, best rated first, at most 20. An
// empty match falls through to generating the canned catalog, cache-aside
// style: the generated rows persist for all later match calls.
func (s *ResourceService) MatchForTeam(teamID uuid.UUID) (*MatchResult, error) {
	project, err := s.teamProject(teamID)
	if err != nil {
		return nil, err
	}

	// Raw detected sets only: an untagged project keeps all three
	// criteria empty so the repository degrades to match-anything.
	tech := matcher.DetectTechnologies(project.Title + " " + project.Description)

	resources, err := s.resources.Match(project.SDGs, pq.StringArray(tech.Languages), pq.StringArray(tech.Frameworks), matchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to match resources: %w", err)
	}

	result := &MatchResult{
		Resources: resources,
		Metadata: MatchMetadata{
			TeamID:             teamID,
			ProjectID:          project.ID,
			ProjectTitle:       project.Title,
			DetectedLanguages:  tech.Languages,
			DetectedFrameworks: tech.Frameworks,
			SDGsMatched:        []int64(project.SDGs),
		},
	}
	if len(resources) > 0 {
		return result, nil
	}

	generated, err := s.generate(project)
	if err != nil {
		return nil, err
	}
	result.Resources = generated
	result.Metadata.GeneratedResources = true
	return result, nil
}

// GenerateForTeam seeds the canned catalog for a team's project
func (s *ResourceService) GenerateForTeam(teamID uuid.UUID) ([]models.Resource, error) {
	project, err := s.teamProject(teamID)
	if err != nil {
		return nil, err
	}
	return s.generate(project)
}

// GenerateForProject seeds the canned catalog for a project
func (s *ResourceService) GenerateForProject(projectID uuid.UUID) ([]models.Resource, error) {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}
	return s.generate(project)
}

// generate inserts the canned catalog entries for the project's detected
// stack, attributed to the oldest mentor on record. Entries whose URL is
// already present are skipped; the unique index on url closes the
// check/insert race between concurrent generation runs.
func (s *ResourceService) generate(project *models.Project) ([]models.Resource, error) {
	mentor, err := s.mentors.GetFirst()
	if err != nil {
		return nil, apperrors.ErrMentorNotFound
	}

	tech := matcher.DetectTechnologies(project.Title + " " + project.Description).WithFallback()
	catalog := matcher.BuildCatalog([]int64(project.SDGs), tech)

	saved := make([]models.Resource, 0, len(catalog))
	for _, seed := range catalog {
		if _, err := s.resources.GetByURL(seed.URL); err == nil {
			continue
		}
		seed.AddedByID = mentor.ID
		if err := s.resources.Create(&seed); err != nil {
			s.logger.WithError(err).WithField("url", seed.URL).Warn("skipping generated resource")
			continue
		}
		saved = append(saved, seed)
	}
	return saved, nil
}

func (s *ResourceService) teamProject(teamID uuid.UUID) (*models.Project, error) {
	if _, err := s.teams.GetByID(teamID); err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	project, err := s.projects.GetByTeamID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamProjectNotFound
	}
	return project, nil
}
