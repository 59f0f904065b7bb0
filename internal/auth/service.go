package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apperrors "campus-collab-backend/internal/errors"
)

// Roles carried in JWT claims
const (
	RoleStudent = "student"
	RoleMentor  = "mentor"
	RoleAdmin   = "admin"
)

// TokenCookieName is the cookie the token travels in for browser clients
const TokenCookieName = "token"

// Claims represents JWT token claims for an authenticated user
type Claims struct {
	UserID uuid.UUID `json:"user_id" example:"0b41a752-dd23-4b3c-8c1c-ec3a8f6e2a11"`
	Email  string    `json:"email" example:"jane.doe@college.edu"`
	Role   string    `json:"role" example:"student"`
	jwt.RegisteredClaims
}

// Service issues and validates JWT tokens
type Service struct {
	secret       []byte
	expiry       time.Duration
	cookieSecure bool
}

// NewService creates a new authentication service
func NewService(secret string, expiryHours int, cookieSecure bool) *Service {
	return &Service{
		secret:       []byte(secret),
		expiry:       time.Duration(expiryHours) * time.Hour,
		cookieSecure: cookieSecure,
	}
}

// GenerateToken creates a signed JWT for the given user
func (s *Service) GenerateToken(userID uuid.UUID, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "campus-collab-backend",
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAuthenticationError("invalid token claims")
	}
	return claims, nil
}

// CookieMaxAge returns the token lifetime in seconds for the auth cookie
func (s *Service) CookieMaxAge() int {
	return int(s.expiry.Seconds())
}

// CookieSecure reports whether the auth cookie should be marked Secure
func (s *Service) CookieSecure() bool {
	return s.cookieSecure
}
