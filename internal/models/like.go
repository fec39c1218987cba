package models

import (
	"time"
)

// Like represents a user's like on a post. One live row per (post, user)
// pair; unlike flips Deleted instead of removing the row, and a later like
// reactivates it.
type Like struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	PostID  uint `gorm:"not null;uniqueIndex:idx_like_post_user" json:"post_id"`
	UserID  uint `gorm:"not null;uniqueIndex:idx_like_post_user" json:"user_id"`
	Deleted bool `gorm:"not null;default:false" json:"deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
