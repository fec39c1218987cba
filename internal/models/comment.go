package models

import (
	"time"
)

// Comment represents a comment on a post. Creation order defines recency.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Body    string `gorm:"type:text;not null" json:"body"`
	Deleted bool   `gorm:"not null;default:false" json:"deleted"`

	User User `gorm:"foreignKey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
