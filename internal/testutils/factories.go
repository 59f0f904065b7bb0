package testutils

import (
	"time"

	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// StudentFactory provides methods to create test Student data
type StudentFactory struct{}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with default values
func (f *StudentFactory) Create() *models.Student {
	id := uuid.New()
	return &models.Student{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Asha",
		LastName:  "Iyer",
		// Unique email derived from the UUID to avoid index conflicts
		Email:         "student-" + id.String()[:8] + "@campus.test",
		Password:      "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Semester:      "5",
		AgreedToTerms: true,
		IsVerified:    true,
	}
}

// WithEmail sets a custom email for the student
func (f *StudentFactory) WithEmail(email string) *models.Student {
	student := f.Create()
	student.Email = email
	return student
}

// WithTeam sets the team ID for the student
func (f *StudentFactory) WithTeam(teamID uuid.UUID) *models.Student {
	student := f.Create()
	student.TeamID = &teamID
	return student
}

// Unverified creates a student that has not completed OTP verification
func (f *StudentFactory) Unverified(otp string) *models.Student {
	student := f.Create()
	expiry := time.Now().Add(15 * time.Minute)
	student.IsVerified = false
	student.OTP = otp
	student.OTPExpiry = &expiry
	return student
}

// MentorFactory provides methods to create test Mentor data
type MentorFactory struct{}

// NewMentorFactory creates a new MentorFactory
func NewMentorFactory() *MentorFactory {
	return &MentorFactory{}
}

// Create creates a test Mentor with default values
func (f *MentorFactory) Create() *models.Mentor {
	id := uuid.New()
	return &models.Mentor{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:     "Mira",
		LastName:      "Kapoor",
		Email:         "mentor-" + id.String()[:8] + "@campus.test",
		Password:      "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Expertise:     pq.StringArray{"web development", "databases"},
		Experience:    6,
		Bio:           "Backend engineer mentoring student teams",
		AgreedToTerms: true,
		IsVerified:    true,
	}
}

// WithEmail sets a custom email for the mentor
func (f *MentorFactory) WithEmail(email string) *models.Mentor {
	mentor := f.Create()
	mentor.Email = email
	return mentor
}

// Unverified creates a mentor with a pending OTP
func (f *MentorFactory) Unverified(otp string) *models.Mentor {
	mentor := f.Create()
	expiry := time.Now().Add(15 * time.Minute)
	mentor.IsVerified = false
	mentor.OTP = otp
	mentor.OTPExpiry = &expiry
	return mentor
}

// AdminFactory provides methods to create test Admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// Create creates a test Admin with default values
func (f *AdminFactory) Create() *models.Admin {
	id := uuid.New()
	return &models.Admin{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Platform Admin",
		Email:    "admin-" + id.String()[:8] + "@campus.test",
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:     "admin",
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values. OwnerID must be set by
// the caller (or use WithOwner) before persisting.
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Test Team",
		// Unique 8-char code derived from the UUID
		TeamCode:    "T" + id.String()[:7],
		Tagline:     "Shipping for good",
		Description: "A test team for testing purposes",
		OwnerID:     uuid.New(),
	}
}

// WithOwner sets the owner ID for the team
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerID = ownerID
	return team
}

// WithCode sets a custom join code for the team
func (f *TeamFactory) WithCode(code string) *models.Team {
	team := f.Create()
	team.TeamCode = code
	return team
}

// WithMentor sets the mentor ID for the team
func (f *TeamFactory) WithMentor(mentorID uuid.UUID) *models.Team {
	team := f.Create()
	team.MentorID = &mentorID
	return team
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Clean Water Tracker",
		Description: "A Python and Django dashboard tracking local water quality",
		SDGs:        pq.Int64Array{6},
		TeamID:      uuid.New(),
	}
}

// WithTeam sets the team ID for the project
func (f *ProjectFactory) WithTeam(teamID uuid.UUID) *models.Project {
	project := f.Create()
	project.TeamID = teamID
	return project
}

// WithSDGs sets the SDG tags for the project
func (f *ProjectFactory) WithSDGs(sdgs ...int64) *models.Project {
	project := f.Create()
	project.SDGs = pq.Int64Array(sdgs)
	return project
}

// WithGithubRepo sets the repository URL for the project
func (f *ProjectFactory) WithGithubRepo(url string) *models.Project {
	project := f.Create()
	project.GithubRepo = url
	return project
}

// ResourceFactory provides methods to create test Resource data
type ResourceFactory struct{}

// NewResourceFactory creates a new ResourceFactory
func NewResourceFactory() *ResourceFactory {
	return &ResourceFactory{}
}

// Create creates a test Resource with default values
func (f *ResourceFactory) Create() *models.Resource {
	id := uuid.New()
	return &models.Resource{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Resource",
		Description: "A test resource for testing purposes",
		Type:        models.ResourceTypeArticle,
		// Unique URL derived from the UUID to avoid index conflicts
		URL:       "https://resources.test/" + id.String()[:8],
		Languages: pq.StringArray{"python"},
		Level:     models.ResourceLevelIntermediate,
		Rating:    5,
		AddedByID: uuid.New(),
	}
}

// WithAddedBy sets the authoring mentor for the resource
func (f *ResourceFactory) WithAddedBy(mentorID uuid.UUID) *models.Resource {
	resource := f.Create()
	resource.AddedByID = mentorID
	return resource
}

// WithTags sets the matching tags for the resource
func (f *ResourceFactory) WithTags(sdgs []int64, languages, frameworks []string) *models.Resource {
	resource := f.Create()
	resource.SDGs = pq.Int64Array(sdgs)
	resource.Languages = pq.StringArray(languages)
	resource.Frameworks = pq.StringArray(frameworks)
	return resource
}

// WithRating sets the rating for the resource
func (f *ResourceFactory) WithRating(rating int) *models.Resource {
	resource := f.Create()
	resource.Rating = rating
	return resource
}

// CommentFactory provides methods to create test Comment data
type CommentFactory struct{}

// NewCommentFactory creates a new CommentFactory
func NewCommentFactory() *CommentFactory {
	return &CommentFactory{}
}

// Create creates a test Comment with default values
func (f *CommentFactory) Create() *models.Comment {
	return &models.Comment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: uuid.New(),
		UserEmail: "commenter@campus.test",
		UserName:  "Dev Commenter",
		Text:      "Great project, love the dashboard!",
	}
}

// WithProject sets the project ID for the comment
func (f *CommentFactory) WithProject(projectID uuid.UUID) *models.Comment {
	comment := f.Create()
	comment.ProjectID = projectID
	return comment
}

// WithAuthor sets the author identity for the comment
func (f *CommentFactory) WithAuthor(email, name string) *models.Comment {
	comment := f.Create()
	comment.UserEmail = email
	comment.UserName = name
	return comment
}

// FactorySet provides access to all factories
type FactorySet struct {
	Student  *StudentFactory
	Mentor   *MentorFactory
	Admin    *AdminFactory
	Team     *TeamFactory
	Project  *ProjectFactory
	Resource *ResourceFactory
	Comment  *CommentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Student:  NewStudentFactory(),
		Mentor:   NewMentorFactory(),
		Admin:    NewAdminFactory(),
		Team:     NewTeamFactory(),
		Project:  NewProjectFactory(),
		Resource: NewResourceFactory(),
		Comment:  NewCommentFactory(),
	}
}
