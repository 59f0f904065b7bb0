package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"campus-collab-backend/internal/api/handlers"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/mocks"
	"campus-collab-backend/internal/repository"
	"campus-collab-backend/internal/service"
	"campus-collab-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ResourceHandlerTestSuite defines the test suite for ResourceHandler
type ResourceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockResourceServiceInterface
	handler     *handlers.ResourceHandler
	httpSuite   *testutils.HTTPTestSuite
	mentorID    uuid.UUID
}

// asMentor injects the authenticated mentor into the request context
func (suite *ResourceHandlerTestSuite) asMentor() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", suite.mentorID)
		c.Set("email", "mentor@campus.test")
		c.Set("role", "mentor")
		c.Next()
	}
}

// SetupTest sets up the test suite
func (suite *ResourceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockResourceServiceInterface(suite.ctrl)
	suite.mentorID = uuid.New()

	// Create handler with mock service
	suite.handler = handlers.NewResourceHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	api := suite.httpSuite.Router.Group("/api")
	resources := api.Group("/resources")
	{
		resources.GET("", suite.handler.List)
		resources.GET("/:resourceId", suite.handler.Get)

		authed := resources.Group("")
		authed.Use(suite.asMentor())
		authed.POST("", suite.handler.Create)
		authed.PUT("/:resourceId", suite.handler.Update)
		authed.DELETE("/:resourceId", suite.handler.Delete)
		authed.GET("/team/:teamId", suite.handler.MatchForTeam)
		authed.POST("/generate/team/:teamId", suite.handler.GenerateForTeam)
		authed.POST("/generate/project/:projectId", suite.handler.GenerateForProject)
	}
}

// TearDownTest cleans up after each test
func (suite *ResourceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests the Create handler
func (suite *ResourceHandlerTestSuite) TestCreate() {
	// Test successful creation
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":       "Django for APIs",
			"description": "Building web APIs with Django REST framework",
			"type":        "book",
			"url":         "https://example.com/django-for-apis",
			"languages":   []string{"python"},
			"frameworks":  []string{"django"},
			"sdgs":        []int64{6},
		}

		created := &models.Resource{
			Title:      "Django for APIs",
			Type:       models.ResourceTypeBook,
			URL:        "https://example.com/django-for-apis",
			Languages:  pq.StringArray{"python"},
			Frameworks: pq.StringArray{"django"},
			SDGs:       pq.Int64Array{6},
			Level:      models.ResourceLevelIntermediate,
			Rating:     5,
			AddedByID:  suite.mentorID,
		}
		created.ID = uuid.New()

		suite.mockService.EXPECT().
			CreateResource(suite.mentorID, gomock.Any()).
			DoAndReturn(func(_ uuid.UUID, req *service.CreateResourceRequest) (*models.Resource, error) {
				assert.Equal(t, "Django for APIs", req.Title)
				assert.Equal(t, []string{"python"}, req.Languages)
				return created, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/resources", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, true, response["success"])
		assert.Equal(t, "Resource created successfully", response["message"])
	})

	// Test caller is not a mentor
	suite.T().Run("Not A Mentor", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":       "Some Resource",
			"description": "Description",
			"type":        "article",
			"url":         "https://example.com/some-resource",
		}

		suite.mockService.EXPECT().
			CreateResource(suite.mentorID, gomock.Any()).
			Return(nil, apperrors.ErrMentorsOnly).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/resources", requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "only mentors can add resources")
	})

	// Test duplicate URL
	suite.T().Run("Duplicate URL", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":       "Some Resource",
			"description": "Description",
			"type":        "article",
			"url":         "https://example.com/already-there",
		}

		suite.mockService.EXPECT().
			CreateResource(suite.mentorID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("url", "a resource with this URL already exists")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/resources", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestList tests the List handler
func (suite *ResourceHandlerTestSuite) TestList() {
	// Test unfiltered listing
	suite.T().Run("Success", func(t *testing.T) {
		listed := []models.Resource{
			{Title: "Django for APIs", Type: models.ResourceTypeBook},
			{Title: "Flask Mega-Tutorial", Type: models.ResourceTypeTutorial},
		}

		suite.mockService.EXPECT().
			ListResources(repository.ResourceFilter{}).
			Return(listed, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/resources", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []models.Resource
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})

	// Test filtered listing
	suite.T().Run("With Filters", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListResources(repository.ResourceFilter{
				Type:     "video",
				Language: "python",
				SDG:      6,
			}).
			Return([]models.Resource{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/resources?type=video&language=python&sdg=6", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test bad sdg parameter
	suite.T().Run("Invalid SDG Parameter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/resources?sdg=water", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid sdg parameter")
	})
}

// TestGet tests the Get handler
func (suite *ResourceHandlerTestSuite) TestGet() {
	// Test successful retrieval
	suite.T().Run("Success", func(t *testing.T) {
		resourceID := uuid.New()

		found := &models.Resource{
			Title: "Django for APIs",
			URL:   "https://example.com/django-for-apis",
		}
		found.ID = resourceID

		suite.mockService.EXPECT().
			GetResource(resourceID).
			Return(found, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/resources/%s", resourceID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.Resource
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, resourceID, response.ID)
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/resources/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid resource ID")
	})

	// Test resource not found
	suite.T().Run("Not Found", func(t *testing.T) {
		resourceID := uuid.New()

		suite.mockService.EXPECT().
			GetResource(resourceID).
			Return(nil, apperrors.ErrResourceNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/resources/%s", resourceID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "resource not found")
	})
}

// TestUpdate tests the Update handler
func (suite *ResourceHandlerTestSuite) TestUpdate() {
	// Test successful update
	suite.T().Run("Success", func(t *testing.T) {
		resourceID := uuid.New()

		requestBody := map[string]interface{}{
			"rating": 4,
		}

		updated := &models.Resource{
			Title:  "Django for APIs",
			Rating: 4,
		}
		updated.ID = resourceID

		suite.mockService.EXPECT().
			UpdateResource(resourceID, suite.mentorID, gomock.Any()).
			Return(updated, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/resources/%s", resourceID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test caller did not add the resource
	suite.T().Run("Not Owner", func(t *testing.T) {
		resourceID := uuid.New()

		requestBody := map[string]interface{}{
			"rating": 1,
		}

		suite.mockService.EXPECT().
			UpdateResource(resourceID, suite.mentorID, gomock.Any()).
			Return(nil, apperrors.ErrNotResourceOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/resources/%s", resourceID), requestBody)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestDelete tests the Delete handler
func (suite *ResourceHandlerTestSuite) TestDelete() {
	// Test successful deletion
	suite.T().Run("Success", func(t *testing.T) {
		resourceID := uuid.New()

		suite.mockService.EXPECT().
			DeleteResource(resourceID, suite.mentorID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/resources/%s", resourceID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test caller did not add the resource
	suite.T().Run("Not Owner", func(t *testing.T) {
		resourceID := uuid.New()

		suite.mockService.EXPECT().
			DeleteResource(resourceID, suite.mentorID).
			Return(apperrors.ErrNotResourceOwner).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/resources/%s", resourceID), nil)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestMatchForTeam tests the MatchForTeam handler
func (suite *ResourceHandlerTestSuite) TestMatchForTeam() {
	// Test successful match
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		result := &service.MatchResult{
			Resources: []models.Resource{
				{Title: "Django for APIs", Rating: 5},
			},
			Metadata: service.MatchMetadata{
				TeamID:             teamID,
				ProjectID:          uuid.New(),
				ProjectTitle:       "Clean Water Tracker",
				DetectedLanguages:  []string{"python"},
				DetectedFrameworks: []string{"django"},
				SDGsMatched:        []int64{6},
			},
		}

		suite.mockService.EXPECT().
			MatchForTeam(teamID).
			Return(result, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/resources/team/%s", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.MatchResult
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Resources, 1)
		assert.Equal(t, teamID, response.Metadata.TeamID)
		assert.Equal(t, "Clean Water Tracker", response.Metadata.ProjectTitle)
		assert.Equal(t, []string{"python"}, response.Metadata.DetectedLanguages)
		assert.Equal(t, []int64{6}, response.Metadata.SDGsMatched)
		assert.False(t, response.Metadata.GeneratedResources)
	})

	// Test team has no project
	suite.T().Run("No Project", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			MatchForTeam(teamID).
			Return(nil, apperrors.ErrTeamProjectNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/resources/team/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team project not found")
	})

	// Test invalid UUID
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/resources/team/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid team ID")
	})
}

// TestGenerateForTeam tests the GenerateForTeam handler
func (suite *ResourceHandlerTestSuite) TestGenerateForTeam() {
	// Test successful generation
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		generated := []models.Resource{
			{Title: "Python Official Tutorial"},
			{Title: "Django Documentation"},
		}

		suite.mockService.EXPECT().
			GenerateForTeam(teamID).
			Return(generated, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/resources/generate/team/%s", teamID), nil)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "2 resources generated successfully", response["message"])
	})

	// Test team not found
	suite.T().Run("Team Not Found", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GenerateForTeam(teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/resources/generate/team/%s", teamID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGenerateForProject tests the GenerateForProject handler
func (suite *ResourceHandlerTestSuite) TestGenerateForProject() {
	// Test successful generation
	suite.T().Run("Success", func(t *testing.T) {
		projectID := uuid.New()

		generated := []models.Resource{
			{Title: "Python Official Tutorial"},
		}

		suite.mockService.EXPECT().
			GenerateForProject(projectID).
			Return(generated, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/resources/generate/project/%s", projectID), nil)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "1 resources generated successfully", response["message"])
	})

	// Test project not found
	suite.T().Run("Project Not Found", func(t *testing.T) {
		projectID := uuid.New()

		suite.mockService.EXPECT().
			GenerateForProject(projectID).
			Return(nil, apperrors.ErrProjectNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/resources/generate/project/%s", projectID), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "project not found")
	})
}

// TestResourceHandlerTestSuite runs the test suite
func TestResourceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}
