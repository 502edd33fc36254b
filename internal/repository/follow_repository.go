package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mosaic/internal/model"
)

// FollowRepository defines follow-edge persistence operations.
type FollowRepository interface {
	Create(ctx context.Context, follow *model.Follow) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error
	Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	Followers(ctx context.Context, followeeID uuid.UUID, offset, limit int) ([]model.UserSummary, error)
	CountFollowers(ctx context.Context, followeeID uuid.UUID) (int64, error)
	Following(ctx context.Context, followerID uuid.UUID, offset, limit int) ([]model.UserSummary, error)
	CountFollowing(ctx context.Context, followerID uuid.UUID) (int64, error)
	FolloweeIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository builds a GORM-backed repository.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge if it does not exist yet. FirstOrCreate keeps
// repeated follow calls idempotent.
func (r *followRepository) Create(ctx context.Context, follow *model.Follow) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", follow.FollowerID, follow.FolloweeID).
		FirstOrCreate(follow).Error
}

// Delete removes the edge. Deleting a missing edge is not an error.
func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) Followers(ctx context.Context, followeeID uuid.UUID, offset, limit int) ([]model.UserSummary, error) {
	var followers []model.UserSummary
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("users.id, users.name, users.email, users.profile_picture").
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", followeeID).
		Order("follows.created_at ASC").
		Offset(offset).Limit(limit).
		Scan(&followers).Error; err != nil {
		return nil, err
	}
	return followers, nil
}

func (r *followRepository) CountFollowers(ctx context.Context, followeeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("followee_id = ?", followeeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *followRepository) Following(ctx context.Context, followerID uuid.UUID, offset, limit int) ([]model.UserSummary, error) {
	var following []model.UserSummary
	if err := r.db.WithContext(ctx).Model(&model.User{}).
		Select("users.id, users.name, users.email, users.profile_picture").
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", followerID).
		Order("follows.created_at ASC").
		Offset(offset).Limit(limit).
		Scan(&following).Error; err != nil {
		return nil, err
	}
	return following, nil
}

func (r *followRepository) CountFollowing(ctx context.Context, followerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FolloweeIDs returns the ids of everyone the user follows, for feed queries.
func (r *followRepository) FolloweeIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
