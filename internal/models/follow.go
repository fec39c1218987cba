package models

import (
	"time"
)

// Follow is a directed edge: FollowerID follows FollowingID.
//
// The pair is unique at the storage level; unfollow soft-deletes the edge and
// a later follow reactivates the same row instead of inserting a duplicate.
// Modified drives the recency ordering of follower/following lists.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_id"`
	Deleted     bool      `gorm:"not null;default:false;index" json:"deleted"`
	CreatedAt   time.Time `json:"created_at"`
	Modified    time.Time `gorm:"autoUpdateTime" json:"modified"`

	Follower  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}
