package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mosaic/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CommentRequest carries the text of a new or updated comment.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// Create godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body CommentRequest true "Comment text"
// @Success 201 {object} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /comment/{postId} [post]
func (h *CommentHandler) Create(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Create(c.Request().Context(), claims.UserID, postID, req.Text)
	if err != nil {
		return textError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetByID godoc
// @Summary Get a comment by id
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /comment/{commentId} [get]
func (h *CommentHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	comment, err := h.commentService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// Update godoc
// @Summary Update the caller's own comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path string true "Comment ID"
// @Param request body CommentRequest true "New text"
// @Success 200 {object} model.Comment
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /comment/{commentId} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.Update(c.Request().Context(), claims.UserID, id, req.Text)
	if err != nil {
		return textError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// Delete godoc
// @Summary Delete the caller's own comment
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /comment/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid comment id")
	}

	if err := h.commentService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "comment deleted successfully"})
}

// ListByPost godoc
// @Summary List a post's comments
// @Tags comments
// @Produce json
// @Param postId path string true "Post ID"
// @Param pageNumber query int false "Page number" default(1)
// @Success 200 {object} service.CommentPage
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /comment/post/{postId} [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	postID, err := uuid.Parse(c.Param("postId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}

	page, err := h.commentService.ListByPost(c.Request().Context(), postID, queryInt(c, "pageNumber", 1))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}
