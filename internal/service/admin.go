package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/repository"
)

// AdminService handles the one-time admin setup and admin login
type AdminService struct {
	repo         repository.AdminRepositoryInterface
	auth         *auth.Service
	validator    *validator.Validate
	securityCode string
}

// NewAdminService creates a new admin service
func NewAdminService(repo repository.AdminRepositoryInterface, authService *auth.Service, validate *validator.Validate, securityCode string) *AdminService {
	return &AdminService{
		repo:         repo,
		auth:         authService,
		validator:    validate,
		securityCode: securityCode,
	}
}

// AdminSetupRequest represents the one-time admin bootstrap payload
type AdminSetupRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	SetupCode string `json:"setup_code" validate:"required"`
}

// AdminLoginRequest represents admin credentials plus the security code
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Code     string `json:"code" validate:"required"`
}

// Setup creates the first admin account. Only usable while no admin
// exists, and only with the configured security code.
func (s *AdminService) Setup(req *AdminSetupRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if req.SetupCode != s.securityCode {
		return apperrors.ErrInvalidSetupCode
	}

	count, err := s.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return apperrors.ErrAdminExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := s.repo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

// Login authenticates an admin
func (s *AdminService) Login(req *AdminLoginRequest) (*AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Code != s.securityCode {
		return nil, apperrors.ErrInvalidSetupCode
	}

	admin, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(admin.ID, admin.Email, auth.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, UserType: "Admin", User: admin}, nil
}
