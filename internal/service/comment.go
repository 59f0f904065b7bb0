package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/repository"
)

// CommentService handles the per-project discussion board
type CommentService struct {
	comments  repository.CommentRepositoryInterface
	projects  repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(comments repository.CommentRepositoryInterface, projects repository.ProjectRepositoryInterface, validate *validator.Validate) *CommentService {
	return &CommentService{
		comments:  comments,
		projects:  projects,
		validator: validate,
	}
}

// PostCommentRequest represents a new comment on a project
type PostCommentRequest struct {
	ProjectID  uuid.UUID `json:"project_id" validate:"required"`
	UserName   string    `json:"user_name" validate:"required,max=200"`
	UserEmail  string    `json:"user_email" validate:"required,email,max=255"`
	ProfilePic string    `json:"profile_pic" validate:"omitempty,url,max=500"`
	Text       string    `json:"text" validate:"required"`
}

// PostComment appends a comment to a project's board
func (s *CommentService) PostComment(req *PostCommentRequest) (*models.Comment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projects.GetByID(req.ProjectID); err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	comment := &models.Comment{
		ProjectID:  req.ProjectID,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		ProfilePic: req.ProfilePic,
		Text:       req.Text,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListComments returns a project's comments, newest first
func (s *CommentService) ListComments(projectID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.projects.GetByID(projectID); err != nil {
		return nil, apperrors.ErrProjectNotFound
	}
	comments, err := s.comments.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// DeleteComment removes a comment. Only its author may delete it; the
// check runs server-side against the requester's email.
func (s *CommentService) DeleteComment(commentID uuid.UUID, requesterEmail string) error {
	comment, err := s.comments.GetByID(commentID)
	if err != nil {
		return apperrors.ErrCommentNotFound
	}
	if comment.UserEmail != requesterEmail {
		return apperrors.ErrNotCommentAuthor
	}
	if err := s.comments.Delete(comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
