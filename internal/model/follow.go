package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge: FollowerID follows FolloweeID. The unique pair
// index keeps the edge set idempotent under concurrent follow requests.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uuid.UUID `json:"follower_id" gorm:"type:char(36);index;uniqueIndex:idx_follower_followee"`
	FolloweeID uuid.UUID `json:"followee_id" gorm:"type:char(36);index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at"`
}
