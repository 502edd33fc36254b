package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles stored on User.Role. Admin unlocks the user-management endpoints.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered member of the network.
type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ProfilePicture string    `json:"profilePicture" gorm:"size:512"`
	CoverPhoto     string    `json:"coverPhoto" gorm:"size:512"`
	Bio            string    `json:"bio" gorm:"type:text"`
	Role           string    `json:"role,omitempty" gorm:"size:50;default:'user'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile is the public projection of a user returned by read endpoints,
// with follower counts attached.
type Profile struct {
	User
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

// UserSummary is the compact form used in follower listings.
type UserSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
}
