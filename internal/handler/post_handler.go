package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mosaic/internal/service"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a post creation request.
type CreatePostRequest struct {
	Text   string   `json:"text" validate:"required"`
	Images []string `json:"images,omitempty"`
}

// UpdatePostRequest represents a post update request; text replacement only.
type UpdatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

func postID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func textError(err error) error {
	if errors.Is(err, service.ErrEmptyText) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return httpError(err)
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Post content"
// @Success 201 {object} model.Post
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /post [post]
func (h *PostHandler) Create(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Create(c.Request().Context(), claims.UserID, req.Text, req.Images)
	if err != nil {
		return textError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// GetByID godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /post/{id} [get]
func (h *PostHandler) GetByID(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := h.postService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary Update the caller's own post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body UpdatePostRequest true "New text"
// @Success 200 {object} model.Post
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /post/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Update(c.Request().Context(), claims.UserID, id, req.Text)
	if err != nil {
		return textError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete the caller's own post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /post/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := h.postService.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post deleted successfully"})
}

// List godoc
// @Summary List posts, newest first
// @Tags posts
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Success 200 {object} service.PostPage
// @Security BearerAuth
// @Router /post [get]
func (h *PostHandler) List(c echo.Context) error {
	page, err := h.postService.List(c.Request().Context(), queryInt(c, "pageNumber", 1))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Feed godoc
// @Summary List posts by users the caller follows
// @Tags posts
// @Produce json
// @Param pageNumber query int false "Page number" default(1)
// @Success 200 {object} service.PostPage
// @Security BearerAuth
// @Router /post/feed [get]
func (h *PostHandler) Feed(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	page, err := h.postService.Feed(c.Request().Context(), claims.UserID, queryInt(c, "pageNumber", 1))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /post/{id}/like [post]
func (h *PostHandler) Like(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := h.postService.Like(c.Request().Context(), claims.UserID, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post liked"})
}

// Unlike godoc
// @Summary Remove the caller's like from a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /post/{id}/like [delete]
func (h *PostHandler) Unlike(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := h.postService.Unlike(c.Request().Context(), claims.UserID, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "post unliked"})
}
