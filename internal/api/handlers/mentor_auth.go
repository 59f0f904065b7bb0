package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/service"
)

// MentorAuthHandler handles mentor signup, login and OTP verification
type MentorAuthHandler struct {
	mentors     service.MentorServiceInterface
	authService *auth.Service
}

// NewMentorAuthHandler creates a new mentor auth handler
func NewMentorAuthHandler(mentors service.MentorServiceInterface, authService *auth.Service) *MentorAuthHandler {
	return &MentorAuthHandler{mentors: mentors, authService: authService}
}

// SignUp registers a mentor account
// @Summary Register a mentor
// @Description Creates an unverified mentor account and emails a six digit OTP, valid for 15 minutes
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.MentorSignUpRequest true "Signup data"
// @Success 201 {object} service.SignUpResponse
// @Failure 400 {object} map[string]interface{} "Invalid request or email already registered"
// @Router /auth/mentor/signup [post]
func (h *MentorAuthHandler) SignUp(c *gin.Context) {
	var req service.MentorSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.mentors.SignUp(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates a mentor
// @Summary Mentor login
// @Description Rejects mentors with an outstanding OTP until they verify it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Mentor with user_type"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/mentor/login [post]
func (h *MentorAuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.mentors.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, h.authService, result.Token)
	c.JSON(http.StatusOK, gin.H{"success": true, "mentor": result.User, "user_type": result.UserType})
}

// VerifyEmail checks the signup OTP and logs the mentor in
// @Summary Verify mentor email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.VerifyEmailRequest true "Email and OTP"
// @Success 200 {object} map[string]interface{} "Verified mentor"
// @Failure 400 {object} map[string]interface{} "Invalid or expired OTP"
// @Router /auth/mentor/verify-email [post]
func (h *MentorAuthHandler) VerifyEmail(c *gin.Context) {
	var req service.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.mentors.VerifyEmail(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, h.authService, result.Token)
	c.JSON(http.StatusOK, gin.H{"status": true, "mentor": result.User, "message": "OTP verified successfully, mentor logged in.", "user_type": result.UserType})
}

// Logout clears the session cookie
// @Summary Mentor logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/mentor/logout [post]
func (h *MentorAuthHandler) Logout(c *gin.Context) {
	clearAuthCookie(c, h.authService)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}
