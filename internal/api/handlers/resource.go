package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/repository"
	"campus-collab-backend/internal/service"
)

// ResourceHandler handles the resource catalog and team matching
type ResourceHandler struct {
	resources service.ResourceServiceInterface
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resources service.ResourceServiceInterface) *ResourceHandler {
	return &ResourceHandler{resources: resources}
}

// requireMentor extracts the authenticated mentor from the context
func requireMentor(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// Create adds a mentor-authored resource
// @Summary Create a resource
// @Description Mentors only
// @Tags resources
// @Accept json
// @Produce json
// @Param request body service.CreateResourceRequest true "Resource data"
// @Success 201 {object} models.Resource
// @Failure 403 {object} map[string]interface{} "Caller is not a mentor"
// @Security BearerAuth
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	mentorID, ok := requireMentor(c)
	if !ok {
		return
	}

	var req service.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.resources.CreateResource(mentorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Resource created successfully", "resource": resource})
}

// List lists resources with optional filters
// @Summary List resources
// @Tags resources
// @Produce json
// @Param type query string false "Resource type"
// @Param topic query string false "Topic tag"
// @Param language query string false "Language tag"
// @Param framework query string false "Framework tag"
// @Param sdg query int false "SDG number (1-17)"
// @Param level query string false "Difficulty level"
// @Success 200 {array} models.Resource
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	filter := repository.ResourceFilter{
		Type:      c.Query("type"),
		Topic:     c.Query("topic"),
		Language:  c.Query("language"),
		Framework: c.Query("framework"),
		Level:     c.Query("level"),
	}
	if sdgStr := c.Query("sdg"); sdgStr != "" {
		sdg, err := strconv.Atoi(sdgStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sdg parameter"})
			return
		}
		filter.SDG = sdg
	}

	resources, err := h.resources.ListResources(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// Get retrieves one resource
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Param resourceId path string true "Resource ID (UUID)"
// @Success 200 {object} models.Resource
// @Failure 404 {object} map[string]interface{} "Resource not found"
// @Router /resources/{resourceId} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	resource, err := h.resources.GetResource(resourceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resource)
}

// Update edits a resource
// @Summary Update a resource
// @Description Only the mentor who added the resource may update it
// @Tags resources
// @Accept json
// @Produce json
// @Param resourceId path string true "Resource ID (UUID)"
// @Param request body service.UpdateResourceRequest true "Resource updates"
// @Success 200 {object} models.Resource
// @Failure 403 {object} map[string]interface{} "Not the resource owner"
// @Security BearerAuth
// @Router /resources/{resourceId} [put]
func (h *ResourceHandler) Update(c *gin.Context) {
	mentorID, ok := requireMentor(c)
	if !ok {
		return
	}

	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	var req service.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resource, err := h.resources.UpdateResource(resourceID, mentorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resource updated successfully", "resource": resource})
}

// Delete removes a resource
// @Summary Delete a resource
// @Description Only the mentor who added the resource may delete it
// @Tags resources
// @Produce json
// @Param resourceId path string true "Resource ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "Not the resource owner"
// @Security BearerAuth
// @Router /resources/{resourceId} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	mentorID, ok := requireMentor(c)
	if !ok {
		return
	}

	resourceID, err := uuid.Parse(c.Param("resourceId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	if err := h.resources.DeleteResource(resourceID, mentorID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Resource deleted successfully"})
}

// MatchForTeam recommends resources for a team's project
// @Summary Match resources for a team
// @Description Tag-overlap match on SDGs and detected technologies, best rated first, at most 20. An empty match generates the canned catalog.
// @Tags resources
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.MatchResult
// @Failure 404 {object} map[string]interface{} "Team or project not found"
// @Security BearerAuth
// @Router /resources/team/{teamId} [get]
func (h *ResourceHandler) MatchForTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	result, err := h.resources.MatchForTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateForTeam seeds canned resources for a team's project
// @Summary Generate resources for a team
// @Tags resources
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Team or project not found"
// @Security BearerAuth
// @Router /resources/generate/team/{teamId} [post]
func (h *ResourceHandler) GenerateForTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	resources, err := h.resources.GenerateForTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   strconv.Itoa(len(resources)) + " resources generated successfully",
		"resources": resources,
	})
}

// GenerateForProject seeds canned resources for a project
// @Summary Generate resources for a project
// @Tags resources
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /resources/generate/project/{projectId} [post]
func (h *ResourceHandler) GenerateForProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	resources, err := h.resources.GenerateForProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   strconv.Itoa(len(resources)) + " resources generated successfully",
		"resources": resources,
	})
}
