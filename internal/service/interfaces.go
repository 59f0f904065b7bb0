package service

import (
	"context"

	"github.com/google/uuid"

	"campus-collab-backend/internal/database/models"
	"campus-collab-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StudentServiceInterface defines student account operations
type StudentServiceInterface interface {
	SignUp(req *StudentSignUpRequest) (*SignUpResponse, error)
	Login(req *LoginRequest) (*AuthResult, error)
	VerifyEmail(req *VerifyEmailRequest) (*AuthResult, error)
	GetByID(id uuid.UUID) (*models.Student, error)
}

// MentorServiceInterface defines mentor account operations
type MentorServiceInterface interface {
	SignUp(req *MentorSignUpRequest) (*SignUpResponse, error)
	Login(req *LoginRequest) (*AuthResult, error)
	VerifyEmail(req *VerifyEmailRequest) (*AuthResult, error)
	GetByID(id uuid.UUID) (*models.Mentor, error)
	GetVerified() ([]models.Mentor, error)
}

// AdminServiceInterface defines administrator operations
type AdminServiceInterface interface {
	Setup(req *AdminSetupRequest) error
	Login(req *AdminLoginRequest) (*AuthResult, error)
}

// TeamServiceInterface defines team registry operations
type TeamServiceInterface interface {
	CreateTeam(ownerID uuid.UUID, req *CreateTeamRequest) (*models.Team, error)
	GetTeam(id uuid.UUID) (*models.Team, error)
	GetAllTeams() ([]models.Team, error)
	EditTeam(teamID, studentID uuid.UUID, req *EditTeamRequest) (*models.Team, error)
	DeleteTeam(teamID, studentID uuid.UUID) error
	JoinByCode(studentID uuid.UUID, teamCode string) (*models.Team, error)
	RequestToJoin(teamID, studentID uuid.UUID) error
	HandleJoinRequest(teamID, ownerID, studentID uuid.UUID, accept bool) error
	LeaveTeam(teamID, studentID uuid.UUID) error
	RemoveMember(teamID, ownerID, studentID uuid.UUID) error
	AssignMentor(teamID, mentorID uuid.UUID) (*models.Team, error)
	CheckMembership(studentID uuid.UUID) (*models.Team, error)
	GetTeamsByMentor(mentorID uuid.UUID) ([]models.Team, error)
}

// ProjectServiceInterface defines project catalog operations
type ProjectServiceInterface interface {
	CreateProject(teamID, studentID uuid.UUID, req *CreateProjectRequest) (*models.Project, error)
	GetProject(id uuid.UUID) (*models.Project, error)
	GetAllProjects() ([]models.Project, error)
	UpdateProject(projectID, studentID uuid.UUID, req *UpdateProjectRequest) (*models.Project, error)
	DeleteProject(projectID, studentID uuid.UUID) error
	GetProjectByTeam(teamID uuid.UUID) (*models.Project, error)
}

// ResourceServiceInterface defines resource catalog and matching operations
type ResourceServiceInterface interface {
	CreateResource(mentorID uuid.UUID, req *CreateResourceRequest) (*models.Resource, error)
	GetResource(id uuid.UUID) (*models.Resource, error)
	ListResources(filter repository.ResourceFilter) ([]models.Resource, error)
	UpdateResource(resourceID, mentorID uuid.UUID, req *UpdateResourceRequest) (*models.Resource, error)
	DeleteResource(resourceID, mentorID uuid.UUID) error
	MatchForTeam(teamID uuid.UUID) (*MatchResult, error)
	GenerateForTeam(teamID uuid.UUID) ([]models.Resource, error)
	GenerateForProject(projectID uuid.UUID) ([]models.Resource, error)
}

// CommentServiceInterface defines discussion board operations
type CommentServiceInterface interface {
	PostComment(req *PostCommentRequest) (*models.Comment, error)
	ListComments(projectID uuid.UUID) ([]models.Comment, error)
	DeleteComment(commentID uuid.UUID, requesterEmail string) error
}

// GitHubServiceInterface defines repository stats lookups
type GitHubServiceInterface interface {
	GetRepoStats(ctx context.Context, repoURL string) (*RepoStats, error)
	GetTeamStats(ctx context.Context, teamID uuid.UUID) (*TeamRepoStats, error)
	GetMentorTeamStats(ctx context.Context, mentorID uuid.UUID) ([]TeamRepoStats, error)
}
