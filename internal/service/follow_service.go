package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "mosaic/internal/errors"
	"mosaic/internal/model"
	"mosaic/internal/repository"
)

// FollowerPage is one page of follower or following summaries.
type FollowerPage struct {
	Users []model.UserSummary `json:"users"`
	Page  int                 `json:"page"`
	Pages int                 `json:"pages"`
}

// FollowService manages the directed follow relation.
type FollowService interface {
	Follow(ctx context.Context, callerID, targetID uuid.UUID) error
	Unfollow(ctx context.Context, callerID, targetID uuid.UUID) error
	Followers(ctx context.Context, targetID uuid.UUID, page int) (*FollowerPage, error)
	Following(ctx context.Context, targetID uuid.UUID, page int) (*FollowerPage, error)
	Follows(ctx context.Context, viewerID, targetID uuid.UUID) (bool, error)
	FollowedBy(ctx context.Context, viewerID, targetID uuid.UUID) (bool, error)
}

type followService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewFollowService creates a new follow service.
func NewFollowService(userRepo repository.UserRepository, followRepo repository.FollowRepository) FollowService {
	return &followService{userRepo: userRepo, followRepo: followRepo}
}

func (s *followService) requireUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	return nil
}

// Follow adds the caller→target edge. Repeating the call is a no-op.
func (s *followService) Follow(ctx context.Context, callerID, targetID uuid.UUID) error {
	if callerID == targetID {
		return apperrors.ErrSelfFollow
	}
	if err := s.requireUser(ctx, targetID); err != nil {
		return err
	}

	follow := &model.Follow{FollowerID: callerID, FolloweeID: targetID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return fmt.Errorf("create follow: %w", err)
	}
	return nil
}

// Unfollow removes the caller→target edge. Removing an absent edge is a no-op.
func (s *followService) Unfollow(ctx context.Context, callerID, targetID uuid.UUID) error {
	if err := s.requireUser(ctx, targetID); err != nil {
		return err
	}
	if err := s.followRepo.Delete(ctx, callerID, targetID); err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

// Followers returns one page of the target's followers.
func (s *followService) Followers(ctx context.Context, targetID uuid.UUID, page int) (*FollowerPage, error) {
	if err := s.requireUser(ctx, targetID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	users, err := s.followRepo.Followers(ctx, targetID, (page-1)*defaultPageSize, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}
	total, err := s.followRepo.CountFollowers(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}

	return &FollowerPage{
		Users: users,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(defaultPageSize))),
	}, nil
}

// Following returns one page of the users the target follows.
func (s *followService) Following(ctx context.Context, targetID uuid.UUID, page int) (*FollowerPage, error) {
	if err := s.requireUser(ctx, targetID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	users, err := s.followRepo.Following(ctx, targetID, (page-1)*defaultPageSize, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}
	total, err := s.followRepo.CountFollowing(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}

	return &FollowerPage{
		Users: users,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(defaultPageSize))),
	}, nil
}

// Follows reports whether the viewer follows the target.
func (s *followService) Follows(ctx context.Context, viewerID, targetID uuid.UUID) (bool, error) {
	if err := s.requireUser(ctx, targetID); err != nil {
		return false, err
	}
	ok, err := s.followRepo.Exists(ctx, viewerID, targetID)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return ok, nil
}

// FollowedBy reports whether the target follows the viewer.
func (s *followService) FollowedBy(ctx context.Context, viewerID, targetID uuid.UUID) (bool, error) {
	if err := s.requireUser(ctx, targetID); err != nil {
		return false, err
	}
	ok, err := s.followRepo.Exists(ctx, targetID, viewerID)
	if err != nil {
		return false, fmt.Errorf("check follow: %w", err)
	}
	return ok, nil
}
