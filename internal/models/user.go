package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Account statuses. Only active accounts may authenticate; suspended and
// banned are applied by moderation decisions.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusBanned    = "banned"
)

// Roles. Moderator and admin carry moderation authority.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string         `gorm:"not null;size:50;uniqueIndex" json:"username"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"size:20;default:'user'" json:"role"`
	Status    string         `gorm:"size:20;not null;default:'active'" json:"status"`
	Bio       string         `gorm:"size:500" json:"bio,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) ReportTargetType() string { return "user" }
func (u *User) ReportTargetID() string   { return u.ID.String() }

// CanModerate reports whether the user's role grants moderation authority.
func (u *User) CanModerate() bool {
	return u.Role == RoleAdmin || u.Role == RoleModerator
}

// ValidUserStatus reports whether s is a recognized account status.
func ValidUserStatus(s string) bool {
	return s == UserStatusActive || s == UserStatusSuspended || s == UserStatusBanned
}
