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

// ErrEmptyText is returned when a post or comment body is blank after trimming.
var ErrEmptyText = errors.New("text is required")

// PostPage is one page of posts.
type PostPage struct {
	Posts []model.Post `json:"posts"`
	Page  int          `json:"page"`
	Pages int          `json:"pages"`
}

// PostService manages posts and likes.
type PostService interface {
	Create(ctx context.Context, authorID uuid.UUID, text string, images []string) (*model.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, callerID, id uuid.UUID, text string) (*model.Post, error)
	Delete(ctx context.Context, callerID, id uuid.UUID) error
	List(ctx context.Context, page int) (*PostPage, error)
	Feed(ctx context.Context, callerID uuid.UUID, page int) (*PostPage, error)
	Like(ctx context.Context, callerID, postID uuid.UUID) error
	Unlike(ctx context.Context, callerID, postID uuid.UUID) error
}

type postService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository, followRepo repository.FollowRepository) PostService {
	return &postService{postRepo: postRepo, followRepo: followRepo}
}

// Create stores a new post with the caller as author.
func (s *postService) Create(ctx context.Context, authorID uuid.UUID, text string, images []string) (*model.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	post := &model.Post{
		ID:     uuid.New(),
		UserID: authorID,
		Text:   text,
		Images: images,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// GetByID returns a post regardless of author, with its like count.
func (s *postService) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	likes, err := s.postRepo.CountLikes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	post.Likes = likes
	return post, nil
}

// Update replaces the text of the caller's own post. A post owned by someone
// else reads as not found.
func (s *postService) Update(ctx context.Context, callerID, id uuid.UUID, text string) (*model.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	post, err := s.postRepo.FindByIDAndAuthor(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	post.Text = text
	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

// Delete removes the caller's own post together with its comments and likes.
func (s *postService) Delete(ctx context.Context, callerID, id uuid.UUID) error {
	if _, err := s.postRepo.FindByIDAndAuthor(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}
	if err := s.postRepo.DeleteCascade(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// List returns one page of all posts, newest first.
func (s *postService) List(ctx context.Context, page int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}

	posts, err := s.postRepo.List(ctx, (page-1)*defaultPageSize, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	return &PostPage{
		Posts: posts,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(defaultPageSize))),
	}, nil
}

// Feed returns one page of posts by users the caller follows.
func (s *postService) Feed(ctx context.Context, callerID uuid.UUID, page int) (*PostPage, error) {
	if page < 1 {
		page = 1
	}

	authorIDs, err := s.followRepo.FolloweeIDs(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list followees: %w", err)
	}
	if len(authorIDs) == 0 {
		return &PostPage{Posts: []model.Post{}, Page: page, Pages: 0}, nil
	}

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, (page-1)*defaultPageSize, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}
	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("count feed: %w", err)
	}

	return &PostPage{
		Posts: posts,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(defaultPageSize))),
	}, nil
}

// Like records the caller's like. Repeating the call is a no-op.
func (s *postService) Like(ctx context.Context, callerID, postID uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}
	if err := s.postRepo.Like(ctx, postID, callerID); err != nil {
		return fmt.Errorf("like post: %w", err)
	}
	return nil
}

// Unlike removes the caller's like. Removing an absent like is a no-op.
func (s *postService) Unlike(ctx context.Context, callerID, postID uuid.UUID) error {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}
	if err := s.postRepo.Unlike(ctx, postID, callerID); err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	return nil
}
