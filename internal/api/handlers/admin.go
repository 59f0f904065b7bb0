package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/service"
)

// AdminHandler handles admin bootstrap, login and mentor assignment
type AdminHandler struct {
	admins      service.AdminServiceInterface
	teams       service.TeamServiceInterface
	mentors     service.MentorServiceInterface
	authService *auth.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admins service.AdminServiceInterface, teams service.TeamServiceInterface, mentors service.MentorServiceInterface, authService *auth.Service) *AdminHandler {
	return &AdminHandler{admins: admins, teams: teams, mentors: mentors, authService: authService}
}

// AssignMentorRequest binds the mentor assignment payload
type AssignMentorRequest struct {
	TeamID   uuid.UUID `json:"team_id" binding:"required"`
	MentorID uuid.UUID `json:"mentor_id" binding:"required"`
}

// Setup creates the first admin account
// @Summary One-time admin setup
// @Description Creates the initial admin. Requires the setup security code and fails once any admin exists.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.AdminSetupRequest true "Setup data"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Invalid setup code"
// @Failure 400 {object} map[string]interface{} "Admin already exists"
// @Router /auth/admin/setup [post]
func (h *AdminHandler) Setup(c *gin.Context) {
	var req service.AdminSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.admins.Setup(&req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Admin account created successfully"})
}

// Login authenticates an admin
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body service.AdminLoginRequest true "Credentials plus security code"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "Invalid credentials or security code"
// @Router /auth/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req service.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.admins.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, h.authService, result.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "admin": result.User, "user_type": result.UserType})
}

// Logout clears the session cookie
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	clearAuthCookie(c, h.authService)
	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Logged out successfully"})
}

// GetAllTeams lists every team for the admin dashboard
// @Summary List all teams
// @Tags admin
// @Produce json
// @Success 200 {array} models.Team
// @Security BearerAuth
// @Router /admin/teams [get]
func (h *AdminHandler) GetAllTeams(c *gin.Context) {
	teams, err := h.teams.GetAllTeams()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetAllMentors lists verified mentors available for assignment
// @Summary List verified mentors
// @Tags admin
// @Produce json
// @Success 200 {array} models.Mentor
// @Security BearerAuth
// @Router /admin/mentors [get]
func (h *AdminHandler) GetAllMentors(c *gin.Context) {
	mentors, err := h.mentors.GetVerified()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// AssignMentor links a verified mentor to a team
// @Summary Assign a mentor to a team
// @Description Only verified mentors can be assigned; assigning replaces any previous mentor
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AssignMentorRequest true "Team and mentor"
// @Success 200 {object} models.Team
// @Failure 400 {object} map[string]interface{} "Mentor not verified"
// @Failure 404 {object} map[string]interface{} "Team or mentor not found"
// @Security BearerAuth
// @Router /admin/assign-mentor [post]
func (h *AdminHandler) AssignMentor(c *gin.Context) {
	var req AssignMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teams.AssignMentor(req.TeamID, req.MentorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "team": team, "message": "Mentor assigned successfully"})
}
