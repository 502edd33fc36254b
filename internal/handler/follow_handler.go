package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mosaic/internal/service"
)

// FollowHandler handles follow-relation endpoints.
type FollowHandler struct {
	followService service.FollowService
}

// NewFollowHandler creates a new follow handler.
func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func targetID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// Follow godoc
// @Summary Follow a user
// @Tags follow
// @Produce json
// @Param id path string true "User ID to follow"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /follow/{id} [post]
func (h *FollowHandler) Follow(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := targetID(c)
	if err != nil {
		return err
	}

	if err := h.followService.Follow(c.Request().Context(), claims.UserID, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "follower added successfully"})
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags follow
// @Produce json
// @Param id path string true "User ID to unfollow"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /follow/{id} [delete]
func (h *FollowHandler) Unfollow(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := targetID(c)
	if err != nil {
		return err
	}

	if err := h.followService.Unfollow(c.Request().Context(), claims.UserID, id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "follower removed successfully"})
}

// Followers godoc
// @Summary List a user's followers
// @Tags follow
// @Produce json
// @Param id path string true "User ID"
// @Param pageNumber query int false "Page number" default(1)
// @Success 200 {object} service.FollowerPage
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /follow/{id}/followers [get]
func (h *FollowHandler) Followers(c echo.Context) error {
	id, err := targetID(c)
	if err != nil {
		return err
	}

	page, err := h.followService.Followers(c.Request().Context(), id, queryInt(c, "pageNumber", 1))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Following godoc
// @Summary List the users a user follows
// @Tags follow
// @Produce json
// @Param id path string true "User ID"
// @Param pageNumber query int false "Page number" default(1)
// @Success 200 {object} service.FollowerPage
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /follow/{id}/following [get]
func (h *FollowHandler) Following(c echo.Context) error {
	id, err := targetID(c)
	if err != nil {
		return err
	}

	page, err := h.followService.Following(c.Request().Context(), id, queryInt(c, "pageNumber", 1))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, page)
}

// Follows godoc
// @Summary Check whether the caller follows a user
// @Tags follow
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /follow/{id}/follows [get]
func (h *FollowHandler) Follows(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := targetID(c)
	if err != nil {
		return err
	}

	follows, err := h.followService.Follows(c.Request().Context(), claims.UserID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"follows": follows})
}

// FollowedBy godoc
// @Summary Check whether a user follows the caller
// @Tags follow
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /follow/{id}/followed-by [get]
func (h *FollowHandler) FollowedBy(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}
	id, err := targetID(c)
	if err != nil {
		return err
	}

	followedBy, err := h.followService.FollowedBy(c.Request().Context(), claims.UserID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"followedBy": followedBy})
}
