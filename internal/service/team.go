package service

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/logger"
	"campus-collab-backend/internal/repository"
)

const (
	teamCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	teamCodeLength   = 8
	codeRetries      = 5
)

// TeamService handles team formation, membership and mentor assignment
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	students  repository.StudentRepositoryInterface
	mentors   repository.MentorRepositoryInterface
	validator *validator.Validate
	logger    *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(teams repository.TeamRepositoryInterface, students repository.StudentRepositoryInterface, mentors repository.MentorRepositoryInterface, validate *validator.Validate, log *logger.Logger) *TeamService {
	return &TeamService{
		teams:     teams,
		students:  students,
		mentors:   mentors,
		validator: validate,
		logger:    log,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Tagline     string `json:"tagline" validate:"max=200"`
	Description string `json:"description"`
}

// EditTeamRequest carries optional team profile updates
type EditTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Tagline     *string `json:"tagline" validate:"omitempty,max=200"`
	Description *string `json:"description"`
}

// CreateTeam creates a team owned by the given student. The owner joins
// the team as its first member; a student already in a team cannot create
// another.
func (s *TeamService) CreateTeam(ownerID uuid.UUID, req *CreateTeamRequest) (*models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	owner, err := s.students.GetByID(ownerID)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if owner.TeamID != nil {
		return nil, apperrors.ErrAlreadyInTeam
	}

	// The unique index on team_code closes the generate/insert race;
	// on collision we draw a fresh code and retry.
	for attempt := 0; attempt < codeRetries; attempt++ {
		code, err := generateTeamCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate team code: %w", err)
		}

		team := &models.Team{
			Name:        req.Name,
			TeamCode:    code,
			Tagline:     req.Tagline,
			Description: req.Description,
			OwnerID:     owner.ID,
		}
		err = s.teams.CreateWithOwner(team, owner)
		if err == nil {
			return s.teams.GetExpanded(team.ID)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		s.logger.WithField("team_code", code).Warn("team code collision, retrying")
	}
	return nil, fmt.Errorf("failed to create team: could not find a free team code")
}

// GetTeam retrieves a team with its members, requests, mentor and project
func (s *TeamService) GetTeam(id uuid.UUID) (*models.Team, error) {
	team, err := s.teams.GetExpanded(id)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	return team, nil
}

// GetAllTeams lists all teams, most recently updated first
func (s *TeamService) GetAllTeams() ([]models.Team, error) {
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return teams, nil
}

// EditTeam updates the team profile. Owner only.
func (s *TeamService) EditTeam(teamID, studentID uuid.UUID, req *EditTeamRequest) (*models.Team, error) {
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

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Tagline != nil {
		team.Tagline = *req.Tagline
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.teams.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.teams.GetExpanded(team.ID)
}

// DeleteTeam disbands a team. Owner only. Members are released and the
// team's project, with its comments, goes with it.
func (s *TeamService) DeleteTeam(teamID, studentID uuid.UUID) error {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}
	if team.OwnerID != studentID {
		return apperrors.ErrNotTeamOwner
	}

	if err := s.teams.DeleteCascade(team); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// JoinByCode adds a student directly to the team behind a join code,
// bypassing owner approval
func (s *TeamService) JoinByCode(studentID uuid.UUID, teamCode string) (*models.Team, error) {
	if teamCode == "" {
		return nil, apperrors.NewValidationError("team_code", "team code is required")
	}

	student, err := s.students.GetByID(studentID)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.TeamID != nil {
		return nil, apperrors.ErrAlreadyInTeam
	}

	team, err := s.teams.GetByCode(teamCode)
	if err != nil {
		return nil, apperrors.ErrInvalidTeamCode
	}

	if err := s.teams.AddMember(team.ID, student.ID); err != nil {
		return nil, fmt.Errorf("failed to join team: %w", err)
	}
	return s.teams.GetExpanded(team.ID)
}

// RequestToJoin files an owner-approvable join request
func (s *TeamService) RequestToJoin(teamID, studentID uuid.UUID) error {
	student, err := s.students.GetByID(studentID)
	if err != nil {
		return apperrors.ErrStudentNotFound
	}
	if student.TeamID != nil {
		return apperrors.ErrAlreadyInTeam
	}

	if _, err := s.teams.GetByID(teamID); err != nil {
		return apperrors.ErrTeamNotFound
	}
	if _, err := s.teams.GetJoinRequest(teamID, studentID); err == nil {
		return apperrors.ErrJoinRequestExists
	}

	if err := s.teams.CreateJoinRequest(teamID, studentID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrJoinRequestExists
		}
		return fmt.Errorf("failed to create join request: %w", err)
	}
	return nil
}

// HandleJoinRequest accepts or rejects a pending join request. Owner only.
// Acceptance of a student who joined another team in the meantime fails
// rather than moving them.
func (s *TeamService) HandleJoinRequest(teamID, ownerID, studentID uuid.UUID, accept bool) error {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}
	if team.OwnerID != ownerID {
		return apperrors.ErrNotTeamOwner
	}

	request, err := s.teams.GetJoinRequest(teamID, studentID)
	if err != nil {
		return apperrors.ErrJoinRequestNotFound
	}

	if accept {
		student, err := s.students.GetByID(studentID)
		if err != nil {
			return apperrors.ErrStudentNotFound
		}
		if student.TeamID != nil {
			return apperrors.ErrAlreadyInTeam
		}
	}

	if err := s.teams.ResolveJoinRequest(request, accept); err != nil {
		return fmt.Errorf("failed to resolve join request: %w", err)
	}
	return nil
}

// LeaveTeam removes the calling student from their team. The owner
// cannot leave; they must delete the team instead.
func (s *TeamService) LeaveTeam(teamID, studentID uuid.UUID) error {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}

	student, err := s.students.GetByID(studentID)
	if err != nil {
		return apperrors.ErrStudentNotFound
	}
	if student.TeamID == nil || *student.TeamID != team.ID {
		return apperrors.ErrNotTeamMember
	}
	if team.OwnerID == studentID {
		return apperrors.ErrOwnerCannotLeave
	}

	if err := s.teams.RemoveMember(studentID); err != nil {
		return fmt.Errorf("failed to leave team: %w", err)
	}
	return nil
}

// RemoveMember evicts a member from the team. Owner only; the owner
// cannot remove themselves.
func (s *TeamService) RemoveMember(teamID, ownerID, studentID uuid.UUID) error {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return apperrors.ErrTeamNotFound
	}
	if team.OwnerID != ownerID {
		return apperrors.ErrNotTeamOwner
	}
	if team.OwnerID == studentID {
		return apperrors.ErrOwnerCannotLeave
	}

	student, err := s.students.GetByID(studentID)
	if err != nil {
		return apperrors.ErrStudentNotFound
	}
	if student.TeamID == nil || *student.TeamID != team.ID {
		return apperrors.ErrNotTeamMember
	}

	if err := s.teams.RemoveMember(studentID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// AssignMentor links a verified mentor to a team. Admin operation;
// assigning replaces any previous mentor.
func (s *TeamService) AssignMentor(teamID, mentorID uuid.UUID) (*models.Team, error) {
	if _, err := s.teams.GetByID(teamID); err != nil {
		return nil, apperrors.ErrTeamNotFound
	}

	mentor, err := s.mentors.GetByID(mentorID)
	if err != nil {
		return nil, apperrors.ErrMentorNotFound
	}
	if !mentor.IsVerified {
		return nil, apperrors.ErrMentorUnverified
	}

	if err := s.teams.SetMentor(teamID, mentorID); err != nil {
		return nil, fmt.Errorf("failed to assign mentor: %w", err)
	}
	return s.teams.GetExpanded(teamID)
}

// CheckMembership returns the student's team, or a not-found error when
// they have none
func (s *TeamService) CheckMembership(studentID uuid.UUID) (*models.Team, error) {
	student, err := s.students.GetByID(studentID)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.TeamID == nil {
		return nil, apperrors.ErrTeamNotFound
	}
	return s.teams.GetExpanded(*student.TeamID)
}

// GetTeamsByMentor lists the teams assigned to a mentor
func (s *TeamService) GetTeamsByMentor(mentorID uuid.UUID) ([]models.Team, error) {
	if _, err := s.mentors.GetByID(mentorID); err != nil {
		return nil, apperrors.ErrMentorNotFound
	}
	teams, err := s.teams.GetByMentorID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return teams, nil
}

// generateTeamCode draws a random 8-character A-Z0-9 join code
func generateTeamCode() (string, error) {
	buf := make([]byte, teamCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = teamCodeAlphabet[int(b)%len(teamCodeAlphabet)]
	}
	return string(buf), nil
}
