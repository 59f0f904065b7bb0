package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-collab-backend/internal/service"
)

// ProjectHandler handles the project showcase catalog
type ProjectHandler struct {
	projects service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// CreateProjectRequest binds the project creation payload
type CreateProjectRequest struct {
	TeamID      uuid.UUID `json:"team_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Thumbnail   string    `json:"thumbnail"`
	GithubRepo  string    `json:"github_repo"`
	SDGs        []int64   `json:"sdgs"`
}

// Create registers the team's showcase project
// @Summary Create a project
// @Description Team owner only; a team holds at most one project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]interface{} "Team already has a project"
// @Failure 403 {object} map[string]interface{} "Not the team owner"
// @Security BearerAuth
// @Router /projects/create [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.CreateProject(req.TeamID, studentID, &service.CreateProjectRequest{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		GithubRepo:  req.GithubRepo,
		SDGs:        req.SDGs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "project": project})
}

// List lists all projects for catalog browsing
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.GetAllProjects()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get returns a project with its team expanded
// @Summary Get project detail
// @Description Expands team, owner, mentor and members; the team's join code is withheld
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /projects/{projectId} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := h.projects.GetProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// GetByTeam returns the project a team registered
// @Summary Get a team's project
// @Tags projects
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]interface{} "Team or project not found"
// @Router /projects/team/{teamId} [get]
func (h *ProjectHandler) GetByTeam(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	project, err := h.projects.GetProjectByTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Update edits a project
// @Summary Update a project
// @Description Team owner only
// @Tags projects
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Param request body service.UpdateProjectRequest true "Project updates"
// @Success 200 {object} models.Project
// @Failure 403 {object} map[string]interface{} "Not the team owner"
// @Security BearerAuth
// @Router /projects/{projectId} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var req service.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.UpdateProject(projectID, studentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": project})
}

// Delete removes a project and its comments
// @Summary Delete a project
// @Description Team owner only
// @Tags projects
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "Not the team owner"
// @Security BearerAuth
// @Router /projects/{projectId} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	if err := h.projects.DeleteProject(projectID, studentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted"})
}
