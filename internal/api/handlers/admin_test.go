package handlers_test

import (
	"net/http"
	"testing"

	"campus-collab-backend/internal/api/handlers"
	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/mocks"
	"campus-collab-backend/internal/service"
	"campus-collab-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AdminHandlerTestSuite defines the test suite for AdminHandler
type AdminHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAdminService  *mocks.MockAdminServiceInterface
	mockTeamService   *mocks.MockTeamServiceInterface
	mockMentorService *mocks.MockMentorServiceInterface
	handler           *handlers.AdminHandler
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AdminHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAdminService = mocks.NewMockAdminServiceInterface(suite.ctrl)
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.mockMentorService = mocks.NewMockMentorServiceInterface(suite.ctrl)

	authService := auth.NewService("test-secret", 24, false)
	suite.handler = handlers.NewAdminHandler(suite.mockAdminService, suite.mockTeamService, suite.mockMentorService, authService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	authAdmin := api.Group("/auth/admin")
	{
		authAdmin.POST("/setup", suite.handler.Setup)
		authAdmin.POST("/login", suite.handler.Login)
		authAdmin.POST("/logout", suite.handler.Logout)
	}
	admin := api.Group("/admin")
	{
		admin.GET("/teams", suite.handler.GetAllTeams)
		admin.GET("/mentors", suite.handler.GetAllMentors)
		admin.POST("/assign-mentor", suite.handler.AssignMentor)
	}
}

// TearDownTest cleans up after each test
func (suite *AdminHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSetup tests the Setup handler
func (suite *AdminHandlerTestSuite) TestSetup() {
	// Test successful bootstrap
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":       "Platform Admin",
			"email":      "admin@campus.test",
			"password":   "long-enough-password",
			"setup_code": "initialsetup123",
		}

		suite.mockAdminService.EXPECT().
			Setup(gomock.Any()).
			DoAndReturn(func(req *service.AdminSetupRequest) error {
				assert.Equal(t, "admin@campus.test", req.Email)
				assert.Equal(t, "initialsetup123", req.SetupCode)
				return nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/admin/setup", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Admin account created successfully", response["message"])
	})

	// Test wrong security code
	suite.T().Run("Wrong Setup Code", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":       "Platform Admin",
			"email":      "admin@campus.test",
			"password":   "long-enough-password",
			"setup_code": "guess",
		}

		suite.mockAdminService.EXPECT().
			Setup(gomock.Any()).
			Return(apperrors.ErrInvalidSetupCode).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/admin/setup", requestBody)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "invalid setup code")
	})

	// Test an admin already exists
	suite.T().Run("Admin Exists", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":       "Second Admin",
			"email":      "second@campus.test",
			"password":   "long-enough-password",
			"setup_code": "initialsetup123",
		}

		suite.mockAdminService.EXPECT().
			Setup(gomock.Any()).
			Return(apperrors.ErrAdminExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/admin/setup", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "admin already exists")
	})
}

// TestLogin tests the Login handler
func (suite *AdminHandlerTestSuite) TestLogin() {
	// Test successful login
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"email":    "admin@campus.test",
			"password": "long-enough-password",
			"code":     "initialsetup123",
		}

		admin := &models.Admin{
			Name:  "Platform Admin",
			Email: "admin@campus.test",
		}

		suite.mockAdminService.EXPECT().
			Login(gomock.Any()).
			Return(&service.AuthResult{
				Token:    "signed-jwt",
				UserType: "admin",
				User:     admin,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/admin/login", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "admin", response["user_type"])
	})

	// Test bad credentials
	suite.T().Run("Invalid Credentials", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"email":    "admin@campus.test",
			"password": "wrong",
			"code":     "initialsetup123",
		}

		suite.mockAdminService.EXPECT().
			Login(gomock.Any()).
			Return(nil, apperrors.ErrInvalidCredentials).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/auth/admin/login", requestBody)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

// TestGetAllMentors tests the GetAllMentors handler
func (suite *AdminHandlerTestSuite) TestGetAllMentors() {
	suite.T().Run("Success", func(t *testing.T) {
		mentors := []models.Mentor{
			{FirstName: "Mira", LastName: "Kapoor", Expertise: pq.StringArray{"python", "django"}},
			{FirstName: "Dan", LastName: "Arbel", Expertise: pq.StringArray{"javascript", "react"}},
		}

		suite.mockMentorService.EXPECT().
			GetVerified().
			Return(mentors, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/admin/mentors", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []models.Mentor
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})
}

// TestAssignMentor tests the AssignMentor handler
func (suite *AdminHandlerTestSuite) TestAssignMentor() {
	// Test successful assignment
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		mentorID := uuid.New()

		requestBody := map[string]interface{}{
			"team_id":   teamID.String(),
			"mentor_id": mentorID.String(),
		}

		team := &models.Team{
			Name:     "Green Horizon",
			MentorID: &mentorID,
		}
		team.ID = teamID

		suite.mockTeamService.EXPECT().
			AssignMentor(teamID, mentorID).
			Return(team, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/assign-mentor", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Mentor assigned successfully", response["message"])
	})

	// Test mentor is not verified
	suite.T().Run("Mentor Unverified", func(t *testing.T) {
		teamID := uuid.New()
		mentorID := uuid.New()

		requestBody := map[string]interface{}{
			"team_id":   teamID.String(),
			"mentor_id": mentorID.String(),
		}

		suite.mockTeamService.EXPECT().
			AssignMentor(teamID, mentorID).
			Return(nil, apperrors.ErrMentorUnverified).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/assign-mentor", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "mentor is not verified")
	})

	// Test mentor not found
	suite.T().Run("Mentor Not Found", func(t *testing.T) {
		teamID := uuid.New()
		mentorID := uuid.New()

		requestBody := map[string]interface{}{
			"team_id":   teamID.String(),
			"mentor_id": mentorID.String(),
		}

		suite.mockTeamService.EXPECT().
			AssignMentor(teamID, mentorID).
			Return(nil, apperrors.ErrMentorNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/assign-mentor", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	// Test missing payload fields
	suite.T().Run("Missing Fields", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/admin/assign-mentor", map[string]interface{}{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestAdminHandlerTestSuite runs the test suite
func TestAdminHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}
