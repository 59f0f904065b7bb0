package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"campus-collab-backend/internal/api/handlers"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/mocks"
	"campus-collab-backend/internal/service"
	"campus-collab-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	httpSuite   *testutils.HTTPTestSuite
	studentID   uuid.UUID
}

// asStudent injects the authenticated student into the request context
func (suite *ProjectHandlerTestSuite) asStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", suite.studentID)
		c.Set("email", "student@campus.test")
		c.Set("role", "student")
		c.Next()
	}
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.studentID = uuid.New()

	// Create handler with mock service
	suite.handler = handlers.NewProjectHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	projects := api.Group("/projects")
	{
		projects.GET("", suite.handler.List)
		projects.GET("/:projectId", suite.handler.Get)
		projects.GET("/team/:teamId", suite.handler.GetByTeam)

		owners := projects.Group("")
		owners.Use(suite.asStudent())
		owners.POST("/create", suite.handler.Create)
		owners.PUT("/:projectId", suite.handler.Update)
		owners.DELETE("/:projectId", suite.handler.Delete)
	}
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests the Create handler
func (suite *ProjectHandlerTestSuite) TestCreate() {
	// Test successful creation
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		project := &models.Project{
			Title:  "Clean Water Tracker",
			TeamID: teamID,
		}
		project.ID = uuid.New()

		suite.mockService.EXPECT().
			CreateProject(teamID, suite.studentID, gomock.Any()).
			DoAndReturn(func(_, _ uuid.UUID, req *service.CreateProjectRequest) (*models.Project, error) {
				assert.Equal(t, "Clean Water Tracker", req.Title)
				return project, nil
			}).
			Times(1)

		requestBody := map[string]interface{}{
			"team_id":     teamID,
			"title":       "Clean Water Tracker",
			"description": "A dashboard tracking water quality",
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/projects/create", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, true, response["success"])
		assert.NotNil(t, response["project"])
	})

	// Test not the team owner
	suite.T().Run("Not Owner", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			CreateProject(teamID, suite.studentID, gomock.Any()).
			Return(nil, apperrors.ErrNotTeamOwner).
			Times(1)

		requestBody := map[string]interface{}{
			"team_id":     teamID,
			"title":       "Side Project",
			"description": "Not mine to register",
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/projects/create", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "only the team owner")
	})

	// Test team already has a project
	suite.T().Run("Project Exists", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			CreateProject(teamID, suite.studentID, gomock.Any()).
			Return(nil, apperrors.ErrProjectExists).
			Times(1)

		requestBody := map[string]interface{}{
			"team_id":     teamID,
			"title":       "Second Project",
			"description": "One is the limit",
		}
		recorder := suite.httpSuite.MakeRequest("POST", "/api/projects/create", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetByTeam tests the GetByTeam handler
func (suite *ProjectHandlerTestSuite) TestGetByTeam() {
	// Test successful lookup
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		project := &models.Project{
			Title:  "Crop Yield Predictor",
			TeamID: teamID,
		}
		project.ID = uuid.New()

		suite.mockService.EXPECT().
			GetProjectByTeam(teamID).
			Return(project, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/projects/team/%s", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.Project
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Crop Yield Predictor", response.Title)
		assert.Equal(t, teamID, response.TeamID)
	})

	// Test team without a project
	suite.T().Run("No Project", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetProjectByTeam(teamID).
			Return(nil, apperrors.ErrTeamProjectNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/projects/team/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team project not found")
	})

	// Test team not found
	suite.T().Run("Team Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetProjectByTeam(teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/projects/team/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/projects/team/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team ID")
	})
}

// TestDelete tests the Delete handler
func (suite *ProjectHandlerTestSuite) TestDelete() {
	// Test successful deletion
	suite.T().Run("Success", func(t *testing.T) {
		projectID := uuid.New()

		suite.mockService.EXPECT().
			DeleteProject(projectID, suite.studentID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/projects/%s", projectID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Project deleted", response["message"])
	})

	// Test not the team owner
	suite.T().Run("Not Owner", func(t *testing.T) {
		projectID := uuid.New()

		suite.mockService.EXPECT().
			DeleteProject(projectID, suite.studentID).
			Return(apperrors.ErrNotTeamOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/projects/%s", projectID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
