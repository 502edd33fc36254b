package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mosaic/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Save(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (*model.Post, error)
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]model.Post, error)
	Count(ctx context.Context) (int64, error)
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]model.Post, error)
	CountByAuthors(ctx context.Context, authorIDs []uuid.UUID) (int64, error)
	Like(ctx context.Context, postID, userID uuid.UUID) error
	Unlike(ctx context.Context, postID, userID uuid.UUID) error
	CountLikes(ctx context.Context, postID uuid.UUID) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Save(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByIDAndAuthor looks a post up by the (id, author) pair. A post owned by
// someone else is indistinguishable from a missing one.
func (r *postRepository) FindByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, authorID).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteCascade removes the post together with its comments and likes in one
// transaction.
func (r *postRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Post{}).Error
	})
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postRepository) ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) CountByAuthors(ctx context.Context, authorIDs []uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id IN ?", authorIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Like inserts the like edge if absent; repeated likes are a no-op.
func (r *postRepository) Like(ctx context.Context, postID, userID uuid.UUID) error {
	like := model.PostLike{PostID: postID, UserID: userID}
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		FirstOrCreate(&like).Error
}

// Unlike removes the like edge. Removing a missing edge is not an error.
func (r *postRepository) Unlike(ctx context.Context, postID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.PostLike{}).Error
}

func (r *postRepository) CountLikes(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
