//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"campus-collab-backend/internal/database/models"
	"campus-collab-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	students      *StudentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.students = NewStudentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOwner persists a student who can own a team
func (suite *TeamRepositoryTestSuite) createOwner() *models.Student {
	owner := suite.factories.Student.Create()
	err := suite.students.Create(owner)
	suite.NoError(err)
	return owner
}

// TestCreateWithOwner tests that creating a team also places the owner in it
func (suite *TeamRepositoryTestSuite) TestCreateWithOwner() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)

	err := suite.repo.CreateWithOwner(team, owner)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)

	// The owner's membership must point at the new team
	stored, err := suite.students.GetByID(owner.ID)
	suite.NoError(err)
	suite.NotNil(stored.TeamID)
	suite.Equal(team.ID, *stored.TeamID)
}

// TestCreateWithOwnerDuplicateCode tests the unique index on the join code
func (suite *TeamRepositoryTestSuite) TestCreateWithOwnerDuplicateCode() {
	owner1 := suite.createOwner()
	team1 := suite.factories.Team.WithCode("SAMECODE")
	team1.OwnerID = owner1.ID
	err := suite.repo.CreateWithOwner(team1, owner1)
	suite.NoError(err)

	owner2 := suite.createOwner()
	team2 := suite.factories.Team.WithCode("SAMECODE")
	team2.OwnerID = owner2.ID

	err = suite.repo.CreateWithOwner(team2, owner2)
	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))

	// The failed transaction must not have touched the second owner
	stored, err := suite.students.GetByID(owner2.ID)
	suite.NoError(err)
	suite.Nil(stored.TeamID)
}

// TestGetByCode tests retrieving a team by its join code
func (suite *TeamRepositoryTestSuite) TestGetByCode() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	found, err := suite.repo.GetByCode(team.TeamCode)
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByCode("NOSUCHCD")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetExpanded tests that relations are populated
func (suite *TeamRepositoryTestSuite) TestGetExpanded() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	requester := suite.createOwner()
	err = suite.repo.CreateJoinRequest(team.ID, requester.ID)
	suite.NoError(err)

	expanded, err := suite.repo.GetExpanded(team.ID)
	suite.NoError(err)
	suite.NotNil(expanded.Owner)
	suite.Equal(owner.ID, expanded.Owner.ID)
	suite.Len(expanded.Members, 1)
	suite.Len(expanded.JoinRequests, 1)
	suite.NotNil(expanded.JoinRequests[0].Student)
	suite.Equal(requester.ID, expanded.JoinRequests[0].Student.ID)
}

// TestJoinRequestDuplicate tests the composite unique index on requests
func (suite *TeamRepositoryTestSuite) TestJoinRequestDuplicate() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	requester := suite.createOwner()
	err = suite.repo.CreateJoinRequest(team.ID, requester.ID)
	suite.NoError(err)

	err = suite.repo.CreateJoinRequest(team.ID, requester.ID)
	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestResolveJoinRequestAccept tests accepting a pending request
func (suite *TeamRepositoryTestSuite) TestResolveJoinRequestAccept() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	requester := suite.createOwner()
	err = suite.repo.CreateJoinRequest(team.ID, requester.ID)
	suite.NoError(err)

	request, err := suite.repo.GetJoinRequest(team.ID, requester.ID)
	suite.NoError(err)

	err = suite.repo.ResolveJoinRequest(request, true)
	suite.NoError(err)

	// Student is now a member and the request is gone
	stored, err := suite.students.GetByID(requester.ID)
	suite.NoError(err)
	suite.NotNil(stored.TeamID)
	suite.Equal(team.ID, *stored.TeamID)

	_, err = suite.repo.GetJoinRequest(team.ID, requester.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestResolveJoinRequestReject tests rejecting a pending request
func (suite *TeamRepositoryTestSuite) TestResolveJoinRequestReject() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	requester := suite.createOwner()
	err = suite.repo.CreateJoinRequest(team.ID, requester.ID)
	suite.NoError(err)

	request, err := suite.repo.GetJoinRequest(team.ID, requester.ID)
	suite.NoError(err)

	err = suite.repo.ResolveJoinRequest(request, false)
	suite.NoError(err)

	// The request is gone and the student is still teamless
	stored, err := suite.students.GetByID(requester.ID)
	suite.NoError(err)
	suite.Nil(stored.TeamID)

	_, err = suite.repo.GetJoinRequest(team.ID, requester.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAddAndRemoveMember tests direct membership writes
func (suite *TeamRepositoryTestSuite) TestAddAndRemoveMember() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	member := suite.createOwner()
	err = suite.repo.AddMember(team.ID, member.ID)
	suite.NoError(err)

	stored, err := suite.students.GetByID(member.ID)
	suite.NoError(err)
	suite.NotNil(stored.TeamID)

	err = suite.repo.RemoveMember(member.ID)
	suite.NoError(err)

	stored, err = suite.students.GetByID(member.ID)
	suite.NoError(err)
	suite.Nil(stored.TeamID)
}

// TestSetMentor tests assigning a mentor
func (suite *TeamRepositoryTestSuite) TestSetMentor() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	mentor := suite.factories.Mentor.Create()
	err = NewMentorRepository(suite.baseTestSuite.DB).Create(mentor)
	suite.NoError(err)

	err = suite.repo.SetMentor(team.ID, mentor.ID)
	suite.NoError(err)

	stored, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.NotNil(stored.MentorID)
	suite.Equal(mentor.ID, *stored.MentorID)
}

// TestGetByMentorID tests listing the teams assigned to a mentor
func (suite *TeamRepositoryTestSuite) TestGetByMentorID() {
	mentor := suite.factories.Mentor.Create()
	err := NewMentorRepository(suite.baseTestSuite.DB).Create(mentor)
	suite.NoError(err)

	for i := 0; i < 2; i++ {
		owner := suite.createOwner()
		team := suite.factories.Team.WithOwner(owner.ID)
		err = suite.repo.CreateWithOwner(team, owner)
		suite.NoError(err)
		err = suite.repo.SetMentor(team.ID, mentor.ID)
		suite.NoError(err)
	}

	// One unassigned team for contrast
	owner := suite.createOwner()
	other := suite.factories.Team.WithOwner(owner.ID)
	err = suite.repo.CreateWithOwner(other, owner)
	suite.NoError(err)

	teams, err := suite.repo.GetByMentorID(mentor.ID)
	suite.NoError(err)
	suite.Len(teams, 2)
}

// TestDeleteCascade tests that deleting a team releases members and
// removes its requests, project and comments
func (suite *TeamRepositoryTestSuite) TestDeleteCascade() {
	owner := suite.createOwner()
	team := suite.factories.Team.WithOwner(owner.ID)
	err := suite.repo.CreateWithOwner(team, owner)
	suite.NoError(err)

	member := suite.createOwner()
	err = suite.repo.AddMember(team.ID, member.ID)
	suite.NoError(err)

	requester := suite.createOwner()
	err = suite.repo.CreateJoinRequest(team.ID, requester.ID)
	suite.NoError(err)

	projectRepo := NewProjectRepository(suite.baseTestSuite.DB)
	project := suite.factories.Project.WithTeam(team.ID)
	err = projectRepo.CreateAndLink(project)
	suite.NoError(err)

	commentRepo := NewCommentRepository(suite.baseTestSuite.DB)
	comment := suite.factories.Comment.WithProject(project.ID)
	err = commentRepo.Create(comment)
	suite.NoError(err)

	err = suite.repo.DeleteCascade(team)
	suite.NoError(err)

	// Team and project are gone
	_, err = suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = projectRepo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Comments are gone
	comments, err := commentRepo.ListByProject(project.ID)
	suite.NoError(err)
	suite.Empty(comments)

	// Members are released, not deleted
	stored, err := suite.students.GetByID(member.ID)
	suite.NoError(err)
	suite.Nil(stored.TeamID)

	// The pending request is gone
	_, err = suite.repo.GetJoinRequest(team.ID, requester.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
