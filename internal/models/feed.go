package models

import (
	"time"
)

// RecentCommentsBound caps the number of comments embedded per feed post.
const RecentCommentsBound = 5

// EnrichedPost is a post joined with its author summary, bounded comment
// list, optional retweet source and the viewer's like state. It is either
// fully assembled or not returned at all.
type EnrichedPost struct {
	ID             uint          `json:"id"`
	Body           string        `json:"body"`
	PostImage      string        `json:"post_image"`
	Author         UserSummary   `json:"author"`
	RecentComments []CommentView `json:"recent_comments"`
	RetweetSource  *RetweetView  `json:"retweet_source,omitempty"`
	Liked          bool          `json:"liked"`
	LikesCount     int           `json:"likes_count"`
	CommentsCount  int           `json:"comments_count"`
	CreatedAt      time.Time     `json:"created_at"`
}

// CommentView is a comment embedded in an enriched post.
type CommentView struct {
	ID        uint        `json:"id"`
	Body      string      `json:"body"`
	Deleted   bool        `json:"deleted"`
	Commenter UserSummary `json:"commenter"`
	CreatedAt time.Time   `json:"created_at"`
}

// RetweetView is the reshared source post embedded in an enriched post.
// Deleted is carried so the consumer can decide how to render a source that
// was removed after being reshared.
type RetweetView struct {
	ID        uint        `json:"id"`
	Body      string      `json:"body"`
	PostImage string      `json:"post_image"`
	Deleted   bool        `json:"deleted"`
	Author    UserSummary `json:"author"`
}

// FollowEntry pairs a follow edge with the summary of the user on the far
// side of it (the follower for follower lists, the followed user for
// following lists).
type FollowEntry struct {
	User     UserSummary `json:"user"`
	EdgeID   uint        `json:"edge_id"`
	Modified time.Time   `json:"modified"`
}
