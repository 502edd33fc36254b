package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "mosaic/internal/errors"
	"mosaic/internal/service"
	"mosaic/internal/storage"
)

// Multipart field names accepted by the upload endpoints.
const (
	fieldProfilePicture = "profilePicture"
	fieldCoverPhoto     = "coverPhoto"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	userService service.UserService
	store       storage.Store
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, store storage.Store) *UserHandler {
	return &UserHandler{userService: userService, store: store}
}

// UpdateUserRequest carries the patchable profile fields; absent fields stay
// unchanged.
type UpdateUserRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	CoverPhoto     *string `json:"coverPhoto,omitempty"`
}

// UploadResponse reports a stored upload.
type UploadResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Profile godoc
// @Summary Get the caller's own profile
// @Tags users
// @Produce json
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// GetByID godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	profile, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

// Update godoc
// @Summary Update the caller's profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateUserRequest true "Fields to patch"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), claims.UserID, service.UpdateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		CoverPhoto:     req.CoverPhoto,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user (admin)
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user removed"})
}

// List godoc
// @Summary List users with pagination (admin)
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} service.UserPage
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user [get]
func (h *UserHandler) List(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	result, err := h.userService.List(c.Request().Context(), page, limit)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// UploadProfilePicture godoc
// @Summary Upload the caller's profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param profilePicture formData file true "JPEG or PNG, max 5 MiB"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user/upload-profile-picture [put]
func (h *UserHandler) UploadProfilePicture(c echo.Context) error {
	return h.upload(c, fieldProfilePicture, h.userService.SetProfilePicture)
}

// UploadCoverPhoto godoc
// @Summary Upload the caller's cover photo
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param coverPhoto formData file true "JPEG or PNG, max 5 MiB"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /user/upload-coverphoto [put]
func (h *UserHandler) UploadCoverPhoto(c echo.Context) error {
	return h.upload(c, fieldCoverPhoto, h.userService.SetCoverPhoto)
}

func (h *UserHandler) upload(c echo.Context, field string, apply func(ctx context.Context, id uuid.UUID, path string) error) error {
	claims, err := callerClaims(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile(field)
	if err != nil {
		return httpError(apperrors.ErrNoFile)
	}
	if file.Size > storage.MaxFileSize {
		return httpError(apperrors.ErrFileTooLarge)
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open file")
	}
	defer src.Close()

	ctx := c.Request().Context()
	path, err := h.store.Save(ctx, field, file.Filename, file.Size, src)
	if err != nil {
		return httpError(err)
	}

	if err := apply(ctx, claims.UserID, path); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Message: field + " uploaded successfully",
		Path:    path,
	})
}
