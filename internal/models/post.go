package models

import (
	"time"
)

// Post represents a published post. A post may reference an earlier post it
// reshares via RetweetedPostID; the reference is never rewritten, even when
// the source post is later soft-deleted, so the consumer must honor the
// source's own Deleted flag.
type Post struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	Body            string `gorm:"type:text;not null" json:"body"`
	PostImage       string `json:"post_image"`
	Deleted         bool   `gorm:"not null;default:false;index" json:"deleted"`
	RetweetedPostID *uint  `gorm:"index" json:"retweeted_post_id,omitempty"`

	User          User  `gorm:"foreignKey:UserID" json:"user"`
	RetweetedPost *Post `gorm:"foreignKey:RetweetedPostID" json:"retweeted_post,omitempty"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the requesting viewer liked this post (computed)
	Liked bool `gorm:"->" json:"liked"`

	// RecentComments holds the bounded most-recent-first comment list,
	// populated by the repository after the main query.
	RecentComments []Comment `gorm:"-" json:"recent_comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
