package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/service"
)

// StudentAuthHandler handles student signup, login and OTP verification
type StudentAuthHandler struct {
	students    service.StudentServiceInterface
	authService *auth.Service
}

// NewStudentAuthHandler creates a new student auth handler
func NewStudentAuthHandler(students service.StudentServiceInterface, authService *auth.Service) *StudentAuthHandler {
	return &StudentAuthHandler{students: students, authService: authService}
}

// SignUp registers a student account
// @Summary Register a student
// @Description Creates an unverified student account and emails a six digit OTP, valid for 15 minutes
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.StudentSignUpRequest true "Signup data"
// @Success 201 {object} service.SignUpResponse
// @Failure 400 {object} map[string]interface{} "Invalid request or email already registered"
// @Router /auth/student/signup [post]
func (h *StudentAuthHandler) SignUp(c *gin.Context) {
	var req service.StudentSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.students.SignUp(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates a student
// @Summary Student login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Student with user_type"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or unverified email"
// @Router /auth/student/login [post]
func (h *StudentAuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.students.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, h.authService, result.Token)
	c.JSON(http.StatusOK, gin.H{"status": true, "student": result.User, "user_type": result.UserType})
}

// VerifyEmail checks the signup OTP and logs the student in
// @Summary Verify student email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.VerifyEmailRequest true "Email and OTP"
// @Success 200 {object} map[string]interface{} "Verified student"
// @Failure 400 {object} map[string]interface{} "Invalid or expired OTP"
// @Router /auth/student/verify-email [post]
func (h *StudentAuthHandler) VerifyEmail(c *gin.Context) {
	var req service.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.students.VerifyEmail(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	setAuthCookie(c, h.authService, result.Token)
	c.JSON(http.StatusOK, gin.H{"status": true, "student": result.User, "message": "Email verified successfully", "user_type": result.UserType})
}

// Logout clears the session cookie
// @Summary Student logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/student/logout [post]
func (h *StudentAuthHandler) Logout(c *gin.Context) {
	clearAuthCookie(c, h.authService)
	c.JSON(http.StatusOK, gin.H{"status": true, "message": "Logged out successfully"})
}
