package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a state violation, e.g. a student who already
// has a team trying to create another one
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthenticationError
func (e *AuthenticationError) Is(target error) bool {
	t, ok := target.(*AuthenticationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthorizationError
func (e *AuthorizationError) Is(target error) bool {
	t, ok := target.(*AuthorizationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// Entity Not Found Errors
var (
	ErrStudentNotFound     = &NotFoundError{Entity: "student"}
	ErrMentorNotFound      = &NotFoundError{Entity: "mentor"}
	ErrAdminNotFound       = &NotFoundError{Entity: "admin"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrProjectNotFound     = &NotFoundError{Entity: "project"}
	ErrResourceNotFound    = &NotFoundError{Entity: "resource"}
	ErrCommentNotFound     = &NotFoundError{Entity: "comment"}
	ErrJoinRequestNotFound = &NotFoundError{Entity: "join request"}
	ErrTeamProjectNotFound = &NotFoundError{Entity: "team project"}
	ErrInvalidTeamCode     = &NotFoundError{Entity: "team code"}
	ErrNoGithubRepo        = &NotFoundError{Entity: "github repository"}
)

// Already Exists Errors
var (
	ErrStudentExists     = &AlreadyExistsError{Entity: "student", Context: "with this email"}
	ErrMentorExists      = &AlreadyExistsError{Entity: "mentor", Context: "with this email"}
	ErrAdminExists       = &AlreadyExistsError{Entity: "admin", Context: ""}
	ErrProjectExists     = &AlreadyExistsError{Entity: "project", Context: "for this team"}
	ErrJoinRequestExists = &AlreadyExistsError{Entity: "join request", Context: "for this team"}
)

// State Conflict Errors
var (
	ErrAlreadyInTeam    = &ConflictError{Message: "student is already in a team"}
	ErrNotTeamMember    = &ConflictError{Message: "student is not in this team"}
	ErrOwnerCannotLeave = &ConflictError{Message: "owner cannot leave the team"}
	ErrMentorUnverified = &ConflictError{Message: "mentor is not verified"}
	ErrAlreadyVerified  = &ConflictError{Message: "email already verified"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrNotVerified        = &AuthenticationError{Message: "please verify your email first"}
	ErrOTPPending         = &AuthenticationError{Message: "please verify your OTP first"}
	ErrInvalidOTP         = &AuthenticationError{Message: "invalid or expired OTP"}
	ErrInvalidSetupCode   = &AuthenticationError{Message: "invalid setup code"}
)

// Authorization Errors
var (
	ErrNotTeamOwner     = &AuthorizationError{Message: "only the team owner may perform this action"}
	ErrNotResourceOwner = &AuthorizationError{Message: "only the mentor who added this resource may modify it"}
	ErrNotCommentAuthor = &AuthorizationError{Message: "only the comment author may delete it"}
	ErrMentorsOnly      = &AuthorizationError{Message: "only mentors can add resources"}
)

// Upstream Errors
var (
	ErrGitHubUnavailable = errors.New("github api request failed")
	ErrInvalidRepoURL    = errors.New("invalid github repository url")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
