package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix         = "user:%d"
	followStatusKeyPrefix = "follow:%d:%d" // viewer, target; the value is viewer-relative
)

const (
	UserTTL         = 5 * time.Minute
	FollowStatusTTL = 2 * time.Minute
)

// UserKey derives the cache key for a user profile row.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

// FollowStatusKey derives the cache key for a viewer's follow status on a
// target user. Keyed by the (viewer, target) pair because the value is
// viewer-relative and must never leak across viewers.
func FollowStatusKey(viewerID, targetID uint) string {
	return fmt.Sprintf(followStatusKeyPrefix, viewerID, targetID)
}

// Invalidate removes a single key; no-op without a client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops the cached profile for a user.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateFollowStatus drops the cached follow status for a viewer/target
// pair. Called on follow and unfollow.
func InvalidateFollowStatus(ctx context.Context, viewerID, targetID uint) {
	Invalidate(ctx, FollowStatusKey(viewerID, targetID))
}
