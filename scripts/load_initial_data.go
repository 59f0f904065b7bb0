package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"campus-collab-backend/internal/config"
	"campus-collab-backend/internal/database"
	"campus-collab-backend/internal/database/models"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type MentorData struct {
	FirstName  string   `yaml:"first_name"`
	LastName   string   `yaml:"last_name"`
	Email      string   `yaml:"email"`
	Password   string   `yaml:"password"`
	Expertise  []string `yaml:"expertise"`
	Experience int      `yaml:"experience"`
	Bio        string   `yaml:"bio"`
}

type StudentData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	Semester  string `yaml:"semester"`
}

type TeamData struct {
	Name         string   `yaml:"name"`
	TeamCode     string   `yaml:"team_code"`
	Tagline      string   `yaml:"tagline"`
	Description  string   `yaml:"description"`
	OwnerEmail   string   `yaml:"owner_email"`
	MemberEmails []string `yaml:"member_emails,omitempty"`
	MentorEmail  string   `yaml:"mentor_email,omitempty"`
}

type ProjectData struct {
	TeamName    string  `yaml:"team_name"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Thumbnail   string  `yaml:"thumbnail,omitempty"`
	GithubRepo  string  `yaml:"github_repo,omitempty"`
	SDGs        []int64 `yaml:"sdgs,omitempty"`
}

type ResourceData struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Type         string   `yaml:"type"`
	URL          string   `yaml:"url"`
	Topics       []string `yaml:"topics,omitempty"`
	Languages    []string `yaml:"languages,omitempty"`
	Frameworks   []string `yaml:"frameworks,omitempty"`
	SDGs         []int64  `yaml:"sdgs,omitempty"`
	Level        string   `yaml:"level,omitempty"`
	Rating       int      `yaml:"rating,omitempty"`
	AddedByEmail string   `yaml:"added_by_email"`
}

// File structures
type MentorsFile struct {
	Mentors []MentorData `yaml:"mentors"`
}

type StudentsFile struct {
	Students []StudentData `yaml:"students"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

type ResourcesFile struct {
	Resources []ResourceData `yaml:"resources"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	mentors, err := loadMentors(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load mentors: %w", err)
	}

	students, err := loadStudents(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load students: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	resources, err := loadResources(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load resources: %w", err)
	}

	// Create mentors first so teams and resources can reference them
	mentorMap := make(map[string]*models.Mentor)
	mentorCreated := 0
	for _, mentorData := range mentors {
		mentor, created, err := createMentor(db, mentorData)
		if err != nil {
			return fmt.Errorf("failed to create mentor %s: %w", mentorData.Email, err)
		}
		mentorMap[mentorData.Email] = mentor
		if created {
			mentorCreated++
		}
	}
	log.Printf("📋 Mentors: %d created, %d total", mentorCreated, len(mentors))

	// Create students
	studentMap := make(map[string]*models.Student)
	studentCreated := 0
	for _, studentData := range students {
		student, created, err := createStudent(db, studentData)
		if err != nil {
			return fmt.Errorf("failed to create student %s: %w", studentData.Email, err)
		}
		studentMap[studentData.Email] = student
		if created {
			studentCreated++
		}
	}
	log.Printf("📋 Students: %d created, %d total", studentCreated, len(students))

	// Create teams and place their members
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, studentMap, mentorMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create projects
	projectCreated := 0
	for _, projectData := range projects {
		_, created, err := createProject(db, projectData, teamMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create project %s: %v", projectData.Title, err)
			continue // Continue with other projects
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("📋 Projects: %d created, %d total", projectCreated, len(projects))

	// Create resources
	resourceCreated := 0
	for _, resourceData := range resources {
		_, created, err := createResource(db, resourceData, mentorMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create resource %s: %v", resourceData.Title, err)
			continue // Continue with other resources
		}
		if created {
			resourceCreated++
		}
	}
	log.Printf("📋 Resources: %d created, %d total", resourceCreated, len(resources))

	return nil
}

func loadMentors(dataDir string) ([]MentorData, error) {
	var allMentors []MentorData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "mentors") {
			var file MentorsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMentors = append(allMentors, file.Mentors...)
		}
		return nil
	})

	return allMentors, err
}

func loadStudents(dataDir string) ([]StudentData, error) {
	var allStudents []StudentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "students") {
			var file StudentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allStudents = append(allStudents, file.Students...)
		}
		return nil
	})

	return allStudents, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func loadResources(dataDir string) ([]ResourceData, error) {
	var allResources []ResourceData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "resources") {
			var file ResourcesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allResources = append(allResources, file.Resources...)
		}
		return nil
	})

	return allResources, err
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func createMentor(db *gorm.DB, mentorData MentorData) (*models.Mentor, bool, error) {
	var mentor models.Mentor
	if err := db.Where("email = ?", mentorData.Email).First(&mentor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			password, err := hashPassword(mentorData.Password)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			mentor = models.Mentor{
				FirstName:     mentorData.FirstName,
				LastName:      mentorData.LastName,
				Email:         mentorData.Email,
				Password:      password,
				Expertise:     pq.StringArray(mentorData.Expertise),
				Experience:    mentorData.Experience,
				Bio:           mentorData.Bio,
				AgreedToTerms: true,
				IsVerified:    true,
			}

			if err := db.Create(&mentor).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create mentor: %w", err)
			}
			return &mentor, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query mentor: %w", err)
	}

	return &mentor, false, nil // created = false (existing)
}

func createStudent(db *gorm.DB, studentData StudentData) (*models.Student, bool, error) {
	var student models.Student
	if err := db.Where("email = ?", studentData.Email).First(&student).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			password, err := hashPassword(studentData.Password)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			student = models.Student{
				FirstName:     studentData.FirstName,
				LastName:      studentData.LastName,
				Email:         studentData.Email,
				Password:      password,
				Semester:      studentData.Semester,
				AgreedToTerms: true,
				IsVerified:    true,
			}

			if err := db.Create(&student).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create student: %w", err)
			}
			return &student, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query student: %w", err)
	}

	return &student, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, studentMap map[string]*models.Student, mentorMap map[string]*models.Mentor) (*models.Team, bool, error) {
	owner := studentMap[teamData.OwnerEmail]
	if owner == nil {
		return nil, false, fmt.Errorf("owner %s not found for team %s", teamData.OwnerEmail, teamData.Name)
	}

	var team models.Team
	if err := db.Where("team_code = ?", teamData.TeamCode).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:        teamData.Name,
				TeamCode:    teamData.TeamCode,
				Tagline:     teamData.Tagline,
				Description: teamData.Description,
				OwnerID:     owner.ID,
			}

			if teamData.MentorEmail != "" {
				if mentor := mentorMap[teamData.MentorEmail]; mentor != nil {
					team.MentorID = &mentor.ID
				} else {
					log.Printf("⚠️  Warning: mentor %s not found for team %s", teamData.MentorEmail, teamData.Name)
				}
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}

			// Place the owner and every listed member in the team
			memberEmails := append([]string{teamData.OwnerEmail}, teamData.MemberEmails...)
			for _, email := range memberEmails {
				member := studentMap[email]
				if member == nil {
					log.Printf("⚠️  Warning: student %s not found for team %s", email, teamData.Name)
					continue
				}
				if err := db.Model(&models.Student{}).
					Where("id = ?", member.ID).
					Update("team_id", team.ID).Error; err != nil {
					log.Printf("⚠️  Warning: failed to place %s in team %s: %v", email, teamData.Name, err)
				}
			}

			return &team, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil // created = false (existing)
}

func createProject(db *gorm.DB, projectData ProjectData, teamMap map[string]*models.Team) (*models.Project, bool, error) {
	team := teamMap[projectData.TeamName]
	if team == nil {
		return nil, false, fmt.Errorf("team %s not found for project %s", projectData.TeamName, projectData.Title)
	}

	var project models.Project
	if err := db.Where("team_id = ?", team.ID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			project = models.Project{
				Title:       projectData.Title,
				Description: projectData.Description,
				Thumbnail:   projectData.Thumbnail,
				GithubRepo:  projectData.GithubRepo,
				SDGs:        pq.Int64Array(projectData.SDGs),
				TeamID:      team.ID,
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}
			return &project, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query project: %w", err)
	}

	return &project, false, nil // created = false (existing)
}

func createResource(db *gorm.DB, resourceData ResourceData, mentorMap map[string]*models.Mentor) (*models.Resource, bool, error) {
	mentor := mentorMap[resourceData.AddedByEmail]
	if mentor == nil {
		return nil, false, fmt.Errorf("mentor %s not found for resource %s", resourceData.AddedByEmail, resourceData.Title)
	}

	var resource models.Resource
	if err := db.Where("url = ?", resourceData.URL).First(&resource).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			level := models.ResourceLevelIntermediate
			if resourceData.Level != "" {
				level = models.ResourceLevel(resourceData.Level)
			}

			rating := 5
			if resourceData.Rating != 0 {
				rating = resourceData.Rating
			}

			resource = models.Resource{
				Title:       resourceData.Title,
				Description: resourceData.Description,
				Type:        models.ResourceType(resourceData.Type),
				URL:         resourceData.URL,
				Topics:      pq.StringArray(resourceData.Topics),
				Languages:   pq.StringArray(resourceData.Languages),
				Frameworks:  pq.StringArray(resourceData.Frameworks),
				SDGs:        pq.Int64Array(resourceData.SDGs),
				Level:       level,
				Rating:      rating,
				AddedByID:   mentor.ID,
			}

			if err := db.Create(&resource).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create resource: %w", err)
			}
			return &resource, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query resource: %w", err)
	}

	return &resource, false, nil // created = false (existing)
}
