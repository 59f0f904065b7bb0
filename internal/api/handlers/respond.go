package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campus-collab-backend/internal/auth"
	apperrors "campus-collab-backend/internal/errors"
)

// respondError translates service errors into HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err), apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case strings.Contains(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// setAuthCookie issues the session cookie alongside the JSON response
func setAuthCookie(c *gin.Context, authService *auth.Service, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.TokenCookieName, token, authService.CookieMaxAge(), "/", "", authService.CookieSecure(), true)
}

// clearAuthCookie expires the session cookie
func clearAuthCookie(c *gin.Context, authService *auth.Service) {
	c.SetCookie(auth.TokenCookieName, "", -1, "/", "", authService.CookieSecure(), true)
}
