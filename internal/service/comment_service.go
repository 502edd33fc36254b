package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "mosaic/internal/errors"
	"mosaic/internal/model"
	"mosaic/internal/repository"
)

// CommentPage is one page of a post's comments.
type CommentPage struct {
	Comments []model.Comment `json:"comments"`
	Page     int             `json:"page"`
	Pages    int             `json:"pages"`
}

// CommentService manages comments on posts.
type CommentService interface {
	Create(ctx context.Context, authorID, postID uuid.UUID, text string) (*model.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	Update(ctx context.Context, callerID, id uuid.UUID, text string) (*model.Comment, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
	ListByPost(ctx context.Context, postID uuid.UUID, page int) (*CommentPage, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

// Create attaches a comment to an existing post with the caller as author.
func (s *commentService) Create(ctx context.Context, authorID, postID uuid.UUID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	comment := &model.Comment{
		ID:     uuid.New(),
		Text:   text,
		UserID: authorID,
		PostID: postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// GetByID returns a comment regardless of author.
func (s *commentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return comment, nil
}

// Update replaces the text of the caller's own comment.
func (s *commentService) Update(ctx context.Context, callerID, id uuid.UUID, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	comment, err := s.commentRepo.FindByIDAndAuthor(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}

	comment.Text = text
	if err := s.commentRepo.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	return comment, nil
}

// Delete removes the caller's own comment.
func (s *commentService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.commentRepo.FindByIDAndAuthor(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// ListByPost returns one page of a post's comments, oldest first. Count and
// fetch share the post scope.
func (s *commentService) ListByPost(ctx context.Context, postID uuid.UUID, page int) (*CommentPage, error) {
	if page < 1 {
		page = 1
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID, (page-1)*defaultPageSize, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	total, err := s.commentRepo.CountByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	return &CommentPage{
		Comments: comments,
		Page:     page,
		Pages:    int(math.Ceil(float64(total) / float64(defaultPageSize))),
	}, nil
}
