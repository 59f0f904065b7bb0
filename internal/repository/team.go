package repository

import (
	"campus-collab-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams. Mutations that
// touch more than one row run inside a transaction so membership can
// never be observed half-applied.
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithOwner creates a team and places the owner in it atomically
func (r *TeamRepository) CreateWithOwner(team *models.Team, owner *models.Student) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Model(&models.Student{}).
			Where("id = ?", owner.ID).
			Update("team_id", team.ID).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetExpanded retrieves a team with owner, members, join requests,
// mentor and project populated
func (r *TeamRepository) GetExpanded(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("Owner").
		Preload("Members").
		Preload("JoinRequests.Student").
		Preload("Mentor").
		Preload("Project").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByCode retrieves a team by its join code
func (r *TeamRepository) GetByCode(teamCode string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "team_code = ?", teamCode).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with their relations, most recently
// updated first
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Preload("Owner").
		Preload("Members").
		Preload("JoinRequests.Student").
		Preload("Mentor").
		Order("updated_at desc").
		Find(&teams).Error
	return teams, err
}

// GetByMentorID retrieves all teams assigned to a mentor
func (r *TeamRepository) GetByMentorID(mentorID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Preload("Owner").
		Preload("Members").
		Preload("Project").
		Where("mentor_id = ?", mentorID).
		Order("updated_at desc").
		Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// DeleteCascade removes the team, its join requests and its project,
// and detaches every member, in one transaction
func (r *TeamRepository) DeleteCascade(team *models.Team) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Student{}).
			Where("team_id = ?", team.ID).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TeamJoinRequest{}, "team_id = ?", team.ID).Error; err != nil {
			return err
		}
		var project models.Project
		err := tx.First(&project, "team_id = ?", team.ID).Error
		if err == nil {
			if err := tx.Delete(&models.Comment{}, "project_id = ?", project.ID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&project).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Delete(team).Error
	})
}

// AddMember places a student in a team. Membership lives only on the
// student row, so this is a single atomic write.
func (r *TeamRepository) AddMember(teamID, studentID uuid.UUID) error {
	return r.db.Model(&models.Student{}).
		Where("id = ?", studentID).
		Update("team_id", teamID).Error
}

// RemoveMember detaches a student from whatever team they are in
func (r *TeamRepository) RemoveMember(studentID uuid.UUID) error {
	return r.db.Model(&models.Student{}).
		Where("id = ?", studentID).
		Update("team_id", nil).Error
}

// SetMentor assigns a mentor to a team
func (r *TeamRepository) SetMentor(teamID, mentorID uuid.UUID) error {
	return r.db.Model(&models.Team{}).
		Where("id = ?", teamID).
		Update("mentor_id", mentorID).Error
}

// CreateJoinRequest records a pending join request
func (r *TeamRepository) CreateJoinRequest(teamID, studentID uuid.UUID) error {
	request := &models.TeamJoinRequest{TeamID: teamID, StudentID: studentID}
	return r.db.Create(request).Error
}

// GetJoinRequest retrieves the pending request of a student for a team
func (r *TeamRepository) GetJoinRequest(teamID, studentID uuid.UUID) (*models.TeamJoinRequest, error) {
	var request models.TeamJoinRequest
	err := r.db.First(&request, "team_id = ? AND student_id = ?", teamID, studentID).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ResolveJoinRequest removes the pending request and, on accept, places
// the student in the team, atomically
func (r *TeamRepository) ResolveJoinRequest(request *models.TeamJoinRequest, accept bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(request).Error; err != nil {
			return err
		}
		if !accept {
			return nil
		}
		return tx.Model(&models.Student{}).
			Where("id = ?", request.StudentID).
			Update("team_id", request.TeamID).Error
	})
}
