package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-collab-backend/internal/auth"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/service"
)

// TeamHandler handles team formation and membership requests
type TeamHandler struct {
	teams service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teams service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teams: teams}
}

// TeamIDRequest binds operations addressed at a team
type TeamIDRequest struct {
	TeamID uuid.UUID `json:"team_id" binding:"required"`
}

// ManageRequestRequest binds the owner's accept/reject decision
type ManageRequestRequest struct {
	TeamID    uuid.UUID `json:"team_id" binding:"required"`
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	Accept    bool      `json:"accept"`
}

// JoinCodeRequest binds the direct code join payload
type JoinCodeRequest struct {
	TeamCode string `json:"team_code" binding:"required"`
}

// RemoveMemberRequest binds the owner's member eviction payload
type RemoveMemberRequest struct {
	TeamID    uuid.UUID `json:"team_id" binding:"required"`
	StudentID uuid.UUID `json:"student_id" binding:"required"`
}

// EditTeamRequest binds the team profile update payload
type EditTeamRequest struct {
	TeamID      uuid.UUID `json:"team_id" binding:"required"`
	Name        *string   `json:"name"`
	Tagline     *string   `json:"tagline"`
	Description *string   `json:"description"`
}

// requireStudent extracts the authenticated student from the context
func requireStudent(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// Create creates a team owned by the caller
// @Summary Create a team
// @Description The caller becomes owner and first member, and receives the team's join code
// @Tags teams
// @Accept json
// @Produce json
// @Param request body service.CreateTeamRequest true "Team data"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]interface{} "Already in a team"
// @Security BearerAuth
// @Router /team/create [post]
func (h *TeamHandler) Create(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teams.CreateTeam(studentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "team": team})
}

// List lists all teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Security BearerAuth
// @Router /team [get]
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teams.GetAllTeams()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// Get retrieves one team with members, requests, mentor and project
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /team/{teamId} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	team, err := h.teams.GetTeam(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Request files an owner-approvable join request
// @Summary Request to join a team
// @Tags teams
// @Accept json
// @Produce json
// @Param request body TeamIDRequest true "Team to join"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Already in a team or duplicate request"
// @Security BearerAuth
// @Router /team/request [post]
func (h *TeamHandler) Request(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req TeamIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.RequestToJoin(req.TeamID, studentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Join request sent"})
}

// ManageRequest accepts or rejects a pending join request
// @Summary Resolve a join request
// @Description Owner only. Accepting adds the student to the team; either way the request is removed.
// @Tags teams
// @Accept json
// @Produce json
// @Param request body ManageRequestRequest true "Decision"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "Not the team owner"
// @Failure 404 {object} map[string]interface{} "No such request"
// @Security BearerAuth
// @Router /team/manage-request [post]
func (h *TeamHandler) ManageRequest(c *gin.Context) {
	ownerID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req ManageRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.HandleJoinRequest(req.TeamID, ownerID, req.StudentID, req.Accept); err != nil {
		respondError(c, err)
		return
	}

	message := "Join request rejected"
	if req.Accept {
		message = "Join request accepted"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// JoinByCode joins a team directly via its join code
// @Summary Join by team code
// @Tags teams
// @Accept json
// @Produce json
// @Param request body JoinCodeRequest true "Join code"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]interface{} "Unknown team code"
// @Failure 400 {object} map[string]interface{} "Already in a team"
// @Security BearerAuth
// @Router /team/join-code [post]
func (h *TeamHandler) JoinByCode(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req JoinCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teams.JoinByCode(studentID, req.TeamCode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "team": team})
}

// Leave removes the caller from their team
// @Summary Leave a team
// @Description The owner cannot leave; they must delete the team
// @Tags teams
// @Accept json
// @Produce json
// @Param request body TeamIDRequest true "Team to leave"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Not a member, or owner trying to leave"
// @Security BearerAuth
// @Router /team/leave [post]
func (h *TeamHandler) Leave(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req TeamIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.LeaveTeam(req.TeamID, studentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Left the team"})
}

// RemoveMember evicts a member from the caller's team
// @Summary Remove a team member
// @Description Owner only; the owner cannot remove themselves
// @Tags teams
// @Accept json
// @Produce json
// @Param request body RemoveMemberRequest true "Member to remove"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "Not the team owner"
// @Security BearerAuth
// @Router /team/remove-member [post]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	ownerID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req RemoveMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.RemoveMember(req.TeamID, ownerID, req.StudentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Member removed"})
}

// Delete disbands the caller's team
// @Summary Delete a team
// @Description Owner only. Members are released; the team's project and its comments are removed.
// @Tags teams
// @Accept json
// @Produce json
// @Param request body TeamIDRequest true "Team to delete"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "Not the team owner"
// @Security BearerAuth
// @Router /team/delete [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req TeamIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.teams.DeleteTeam(req.TeamID, studentID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Team deleted"})
}

// Edit updates the team profile
// @Summary Edit a team
// @Description Owner only. The join code is immutable.
// @Tags teams
// @Accept json
// @Produce json
// @Param request body EditTeamRequest true "Team updates"
// @Success 200 {object} models.Team
// @Failure 403 {object} map[string]interface{} "Not the team owner"
// @Security BearerAuth
// @Router /team/edit [post]
func (h *TeamHandler) Edit(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	var req EditTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teams.EditTeam(req.TeamID, studentID, &service.EditTeamRequest{
		Name:        req.Name,
		Tagline:     req.Tagline,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "team": team})
}

// Check returns the caller's team, if any
// @Summary Check team membership
// @Tags teams
// @Produce json
// @Success 200 {object} map[string]interface{} "found:false, or success:true with the team"
// @Security BearerAuth
// @Router /team/check [post]
func (h *TeamHandler) Check(c *gin.Context) {
	studentID, ok := requireStudent(c)
	if !ok {
		return
	}

	team, err := h.teams.CheckMembership(studentID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusOK, gin.H{"found": false})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "team": team})
}
