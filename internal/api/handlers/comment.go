package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/service"
)

// CommentHandler handles project discussion boards
type CommentHandler struct {
	comments service.CommentServiceInterface
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Post appends a comment to a project's board
// @Summary Post a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body service.PostCommentRequest true "Comment data"
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]interface{} "Empty text or missing author"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Security BearerAuth
// @Router /comments [post]
func (h *CommentHandler) Post(c *gin.Context) {
	var req service.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.PostComment(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "comment": comment})
}

// List returns a project's comments, newest first
// @Summary List comments for a project
// @Tags comments
// @Produce json
// @Param projectId path string true "Project ID (UUID)"
// @Success 200 {array} models.Comment
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Router /comments/{projectId} [get]
func (h *CommentHandler) List(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	comments, err := h.comments.ListComments(projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Delete removes a comment authored by the caller
// @Summary Delete a comment
// @Description The requester's email must match the comment author's
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID (UUID)"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "Not the comment author"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return
	}

	email, ok := auth.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.comments.DeleteComment(commentID, email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted"})
}
