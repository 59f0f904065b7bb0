package repository

import (
	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// StudentRepositoryInterface defines database operations for students
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id uuid.UUID) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	Update(student *models.Student) error
}

// MentorRepositoryInterface defines database operations for mentors
type MentorRepositoryInterface interface {
	Create(mentor *models.Mentor) error
	GetByID(id uuid.UUID) (*models.Mentor, error)
	GetByEmail(email string) (*models.Mentor, error)
	Update(mentor *models.Mentor) error
	GetVerified() ([]models.Mentor, error)
	GetFirst() (*models.Mentor, error)
}

// AdminRepositoryInterface defines database operations for admins
type AdminRepositoryInterface interface {
	Create(admin *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
	Count() (int64, error)
}

// TeamRepositoryInterface defines database operations for teams,
// including the transactional multi-row membership mutations
type TeamRepositoryInterface interface {
	CreateWithOwner(team *models.Team, owner *models.Student) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetExpanded(id uuid.UUID) (*models.Team, error)
	GetByCode(teamCode string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	GetByMentorID(mentorID uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	DeleteCascade(team *models.Team) error
	AddMember(teamID, studentID uuid.UUID) error
	RemoveMember(studentID uuid.UUID) error
	SetMentor(teamID, mentorID uuid.UUID) error
	CreateJoinRequest(teamID, studentID uuid.UUID) error
	GetJoinRequest(teamID, studentID uuid.UUID) (*models.TeamJoinRequest, error)
	ResolveJoinRequest(request *models.TeamJoinRequest, accept bool) error
}

// ProjectRepositoryInterface defines database operations for projects
type ProjectRepositoryInterface interface {
	CreateAndLink(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetDetail(id uuid.UUID) (*models.Project, error)
	GetAll() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	GetByTeamID(teamID uuid.UUID) (*models.Project, error)
}

// ResourceFilter narrows resource listings; zero values are ignored
type ResourceFilter struct {
	Type      string
	Topic     string
	Language  string
	Framework string
	SDG       int
	Level     string
}

// ResourceRepositoryInterface defines database operations for resources
type ResourceRepositoryInterface interface {
	Create(resource *models.Resource) error
	GetByID(id uuid.UUID) (*models.Resource, error)
	GetByURL(url string) (*models.Resource, error)
	Update(resource *models.Resource) error
	Delete(id uuid.UUID) error
	List(filter ResourceFilter) ([]models.Resource, error)
	Match(sdgs pq.Int64Array, languages, frameworks pq.StringArray, limit int) ([]models.Resource, error)
}

// CommentRepositoryInterface defines database operations for comments
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	ListByProject(projectID uuid.UUID) ([]models.Comment, error)
	Delete(id uuid.UUID) error
}
