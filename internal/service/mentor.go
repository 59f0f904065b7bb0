package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/logger"
	"campus-collab-backend/internal/mailer"
	"campus-collab-backend/internal/repository"
)

// MentorService handles mentor accounts and their OTP verification flow
type MentorService struct {
	repo      repository.MentorRepositoryInterface
	auth      *auth.Service
	mailer    *mailer.Mailer
	validator *validator.Validate
	logger    *logger.Logger
}

// NewMentorService creates a new mentor service
func NewMentorService(repo repository.MentorRepositoryInterface, authService *auth.Service, mail *mailer.Mailer, validate *validator.Validate, log *logger.Logger) *MentorService {
	return &MentorService{
		repo:      repo,
		auth:      authService,
		mailer:    mail,
		validator: validate,
		logger:    log,
	}
}

// MentorSignUpRequest represents the data needed to register a mentor
type MentorSignUpRequest struct {
	FirstName       string   `json:"first_name" validate:"required,max=100"`
	LastName        string   `json:"last_name" validate:"required,max=100"`
	Email           string   `json:"email" validate:"required,email,max=255"`
	Password        string   `json:"password" validate:"required,min=6"`
	ConfirmPassword string   `json:"confirm_password" validate:"required"`
	Expertise       []string `json:"expertise" validate:"required,min=1"`
	Experience      int      `json:"experience" validate:"gte=0"`
	Bio             string   `json:"bio" validate:"required"`
	AgreedToTerms   bool     `json:"agreed_to_terms" validate:"eq=true"`
}

// SignUp registers a new mentor and emails a verification OTP
func (s *MentorService) SignUp(req *MentorSignUpRequest) (*SignUpResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("confirm_password", "passwords do not match")
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrMentorExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	otp, err := generateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}
	expiry := time.Now().Add(otpValidity)

	mentor := &models.Mentor{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      string(hashed),
		Expertise:     pq.StringArray(req.Expertise),
		Experience:    req.Experience,
		Bio:           req.Bio,
		AgreedToTerms: req.AgreedToTerms,
		ProfilePic:    fmt.Sprintf("https://avatar.iran.liara.run/username?username=%s+%s", req.FirstName, req.LastName),
		OTP:           otp,
		OTPExpiry:     &expiry,
	}

	if err := s.repo.Create(mentor); err != nil {
		return nil, fmt.Errorf("failed to create mentor: %w", err)
	}

	if err := s.mailer.SendOTP(mentor.Email, mentor.FirstName, otp); err != nil {
		s.logger.WithError(err).WithField("email", mentor.Email).Error("failed to send verification email")
	}

	return &SignUpResponse{
		Email:   mentor.Email,
		Message: "Mentor registered successfully. Please verify OTP.",
	}, nil
}

// Login authenticates a verified mentor. A mentor with an outstanding
// OTP cannot log in until they verify it.
func (s *MentorService) Login(req *LoginRequest) (*AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	mentor, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !mentor.IsVerified {
		return nil, apperrors.ErrNotVerified
	}
	if mentor.OTP != "" {
		return nil, apperrors.ErrOTPPending
	}
	if bcrypt.CompareHashAndPassword([]byte(mentor.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(mentor.ID, mentor.Email, auth.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, UserType: "Mentor", User: mentor}, nil
}

// VerifyEmail checks the OTP, marks the mentor verified and logs them in
func (s *MentorService) VerifyEmail(req *VerifyEmailRequest) (*AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	mentor, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrMentorNotFound
	}
	if mentor.OTP != req.OTP || mentor.OTPExpiry == nil || mentor.OTPExpiry.Before(time.Now()) {
		return nil, apperrors.ErrInvalidOTP
	}

	mentor.IsVerified = true
	mentor.OTP = ""
	mentor.OTPExpiry = nil
	if err := s.repo.Update(mentor); err != nil {
		return nil, fmt.Errorf("failed to update mentor: %w", err)
	}

	token, err := s.auth.GenerateToken(mentor.ID, mentor.Email, auth.RoleMentor)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, UserType: "Mentor", User: mentor}, nil
}

// GetByID retrieves a mentor
func (s *MentorService) GetByID(id uuid.UUID) (*models.Mentor, error) {
	mentor, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrMentorNotFound
	}
	return mentor, nil
}

// GetVerified lists mentors available for assignment
func (s *MentorService) GetVerified() ([]models.Mentor, error) {
	mentors, err := s.repo.GetVerified()
	if err != nil {
		return nil, fmt.Errorf("failed to get mentors: %w", err)
	}
	return mentors, nil
}
