package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/logger"
	"campus-collab-backend/internal/mailer"
	"campus-collab-backend/internal/repository"
)

const otpValidity = 15 * time.Minute

// StudentService handles student accounts and their OTP verification flow
type StudentService struct {
	repo      repository.StudentRepositoryInterface
	auth      *auth.Service
	mailer    *mailer.Mailer
	validator *validator.Validate
	logger    *logger.Logger
}

// NewStudentService creates a new student service
func NewStudentService(repo repository.StudentRepositoryInterface, authService *auth.Service, mail *mailer.Mailer, validate *validator.Validate, log *logger.Logger) *StudentService {
	return &StudentService{
		repo:      repo,
		auth:      authService,
		mailer:    mail,
		validator: validate,
		logger:    log,
	}
}

// StudentSignUpRequest represents the data needed to register a student
type StudentSignUpRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=100"`
	LastName        string `json:"last_name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Semester        string `json:"semester" validate:"required,max=20"`
	AgreedToTerms   bool   `json:"agreed_to_terms" validate:"eq=true"`
	Gender          string `json:"gender" validate:"required,oneof=male female"`
}

// LoginRequest represents credentials for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailRequest represents an OTP verification attempt
type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

// SignUpResponse tells the client where the OTP was sent
type SignUpResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// AuthResult carries a signed token and the authenticated account
type AuthResult struct {
	Token    string      `json:"-"`
	UserType string      `json:"user_type"`
	User     interface{} `json:"user"`
}

// SignUp registers a new student and emails a verification OTP
func (s *StudentService) SignUp(req *StudentSignUpRequest) (*SignUpResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.NewValidationError("confirm_password", "passwords do not match")
	}

	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return nil, apperrors.ErrStudentExists
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

	student := &models.Student{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Password:      string(hashed),
		Semester:      req.Semester,
		AgreedToTerms: req.AgreedToTerms,
		ProfilePic:    avatarURL(req.Gender, req.FirstName),
		OTP:           otp,
		OTPExpiry:     &expiry,
	}

	if err := s.repo.Create(student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	if err := s.mailer.SendOTP(student.Email, student.FirstName, otp); err != nil {
		s.logger.WithError(err).WithField("email", student.Email).Error("failed to send verification email")
	}

	return &SignUpResponse{
		Email:   student.Email,
		Message: "OTP sent to email. Please verify your account.",
	}, nil
}

// Login authenticates a verified student
func (s *StudentService) Login(req *LoginRequest) (*AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	student, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !student.IsVerified {
		return nil, apperrors.ErrNotVerified
	}
	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(student.ID, student.Email, auth.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, UserType: "Student", User: student}, nil
}

// VerifyEmail checks the OTP, marks the student verified and logs them in
func (s *StudentService) VerifyEmail(req *VerifyEmailRequest) (*AuthResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	student, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.IsVerified {
		return nil, apperrors.ErrAlreadyVerified
	}
	if student.OTP != req.OTP || student.OTPExpiry == nil || student.OTPExpiry.Before(time.Now()) {
		return nil, apperrors.ErrInvalidOTP
	}

	student.IsVerified = true
	student.OTP = ""
	student.OTPExpiry = nil
	if err := s.repo.Update(student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	token, err := s.auth.GenerateToken(student.ID, student.Email, auth.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResult{Token: token, UserType: "Student", User: student}, nil
}

// GetByID retrieves a student
func (s *StudentService) GetByID(id uuid.UUID) (*models.Student, error) {
	student, err := s.repo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// generateOTP returns a random six digit code
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// avatarURL picks a deterministic placeholder avatar by gender
func avatarURL(gender, username string) string {
	variant := "boy"
	if gender == "female" {
		variant = "girl"
	}
	return fmt.Sprintf("https://avatar.iran.liara.run/public/%s?username=%s", variant, username)
}
