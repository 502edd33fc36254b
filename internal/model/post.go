package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a text post with an ordered list of image paths.
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Images    []string  `json:"images" gorm:"serializer:json"`
	Likes     int64     `json:"likes" gorm:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PostLike marks that a user liked a post. The unique pair index makes
// duplicate likes fail closed under concurrent requests.
type PostLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uuid.UUID `json:"post_id" gorm:"type:char(36);index;uniqueIndex:idx_post_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);uniqueIndex:idx_post_user"`
	CreatedAt time.Time `json:"created_at"`
}
