package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mosaic/internal/cache"
	apperrors "mosaic/internal/errors"
	"mosaic/internal/model"
	"mosaic/internal/repository"
)

const (
	userCacheTTL    = 5 * time.Minute
	defaultPageSize = 10
)

// UpdateUserInput carries the patchable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateUserInput struct {
	Name           *string
	Email          *string
	Bio            *string
	ProfilePicture *string
	CoverPhoto     *string
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users   []model.User `json:"users"`
	HasMore bool         `json:"hasMore"`
}

// UserService exposes profile operations.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, callerID uuid.UUID, input UpdateUserInput) (*model.User, error)
	Delete(ctx context.Context, targetID uuid.UUID) error
	List(ctx context.Context, page, limit int) (*UserPage, error)
	SetProfilePicture(ctx context.Context, callerID uuid.UUID, path string) error
	SetCoverPhoto(ctx context.Context, callerID uuid.UUID, path string) error
}

type userService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	cache      *cache.Client
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, cache *cache.Client) UserService {
	return &userService{userRepo: userRepo, followRepo: followRepo, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// GetByID returns the public profile with follower counts, cache-aside.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	followers, err := s.followRepo.CountFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}
	following, err := s.followRepo.CountFollowing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	profile := &model.Profile{User: *user, Followers: followers, Following: following}
	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return profile, nil
}

// Update patches only the provided fields on the caller's own record.
func (s *userService) Update(ctx context.Context, callerID uuid.UUID, input UpdateUserInput) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.ProfilePicture != nil {
		user.ProfilePicture = *input.ProfilePicture
	}
	if input.CoverPhoto != nil {
		user.CoverPhoto = *input.CoverPhoto
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(callerID))
	return user, nil
}

// Delete removes a user and their follow edges. Admin gating happens at the
// router.
func (s *userService) Delete(ctx context.Context, targetID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(targetID))
	return nil
}

// List returns one page of users plus a hasMore flag.
func (s *userService) List(ctx context.Context, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	users, err := s.userRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	return &UserPage{
		Users:   users,
		HasMore: int64(page*limit) < total,
	}, nil
}

// SetProfilePicture stores the uploaded object path on the user record.
func (s *userService) SetProfilePicture(ctx context.Context, callerID uuid.UUID, path string) error {
	_, err := s.Update(ctx, callerID, UpdateUserInput{ProfilePicture: &path})
	return err
}

// SetCoverPhoto stores the uploaded object path on the user record.
func (s *userService) SetCoverPhoto(ctx context.Context, callerID uuid.UUID, path string) error {
	_, err := s.Update(ctx, callerID, UpdateUserInput{CoverPhoto: &path})
	return err
}
