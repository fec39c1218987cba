// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account.
//
// Deletion is logical: rows are never removed, the Deleted flag is set and
// every consuming query decides whether to exclude the row. Gorm's automatic
// soft-delete scoping is deliberately not used here because deleted users
// must stay joinable (a deleted author is still rendered on old posts,
// flagged as deleted).
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	Image          string    `json:"image"`
	ActivationCode string    `json:"-"`
	Activated      bool      `gorm:"not null;default:false;index" json:"activated"`
	Deleted        bool      `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Posts []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// UserSummary is the projection of a user embedded in feeds and follow lists.
// It never carries the email address or activation state.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image"`
	Deleted  bool   `json:"deleted"`
}

// Summary projects the user into the embeddable form.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Image:    u.Image,
		Deleted:  u.Deleted,
	}
}
