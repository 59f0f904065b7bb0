package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-collab-backend/internal/service"
)

// MentorHandler handles mentor-facing team views and repository stats
type MentorHandler struct {
	teams  service.TeamServiceInterface
	github service.GitHubServiceInterface
}

// NewMentorHandler creates a new mentor handler
func NewMentorHandler(teams service.TeamServiceInterface, github service.GitHubServiceInterface) *MentorHandler {
	return &MentorHandler{teams: teams, github: github}
}

// AssignedTeams lists the teams assigned to a mentor
// @Summary List a mentor's assigned teams
// @Tags mentors
// @Produce json
// @Param mentorId path string true "Mentor ID (UUID)"
// @Success 200 {array} models.Team
// @Failure 404 {object} map[string]interface{} "Mentor not found"
// @Security BearerAuth
// @Router /mentor/{mentorId}/teams [get]
func (h *MentorHandler) AssignedTeams(c *gin.Context) {
	mentorID, err := uuid.Parse(c.Param("mentorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mentor ID"})
		return
	}

	teams, err := h.teams.GetTeamsByMentor(mentorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// TeamGitHubStats summarizes the repository behind a team's project
// @Summary GitHub stats for a team's project
// @Description When the GitHub API is unreachable, returns 200 with fallback stats built from stored data
// @Tags mentors
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamRepoStats
// @Failure 404 {object} map[string]interface{} "Team, project or repository link missing"
// @Security BearerAuth
// @Router /mentor/teams/{teamId}/github-stats [get]
func (h *MentorHandler) TeamGitHubStats(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	stats, err := h.github.GetTeamStats(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AllTeamsGitHubStats summarizes every repository across a mentor's teams
// @Summary GitHub stats for all of a mentor's teams
// @Description Teams without a GitHub-backed project are skipped; per-team API failures degrade to fallback stats
// @Tags mentors
// @Produce json
// @Param mentorId path string true "Mentor ID (UUID)"
// @Success 200 {object} map[string]interface{} "teams array of per-team stats"
// @Failure 404 {object} map[string]interface{} "Mentor not found"
// @Security BearerAuth
// @Router /mentor/{mentorId}/github-stats [get]
func (h *MentorHandler) AllTeamsGitHubStats(c *gin.Context) {
	mentorID, err := uuid.Parse(c.Param("mentorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mentor ID"})
		return
	}

	stats, err := h.github.GetMentorTeamStats(c.Request.Context(), mentorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": stats})
}
