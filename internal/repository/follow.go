package repository

import (
	"context"
	"errors"

	"microblog/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow graph operations
type FollowRepository interface {
	GetActive(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	ListFollowers(ctx context.Context, userID uint, limit int) ([]models.Follow, error)
	ListFollowing(ctx context.Context, userID uint, limit int) ([]models.Follow, error)
	ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) error
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// GetActive returns the live edge from follower to following, or nil when no
// such edge exists (a soft-deleted edge counts as not following).
func (r *followRepository) GetActive(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ? AND deleted = ?", followerID, followingID, false).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &follow, nil
}

// ListFollowers returns the most recently modified edges pointing at userID,
// with the follower preloaded. The limit applies after ordering.
func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit int) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Follower").
		Where("following_id = ? AND deleted = ?", userID, false).
		Order("modified DESC, id DESC").
		Limit(limit).
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

// ListFollowing returns the most recently modified edges leaving userID, with
// the followed user preloaded. The limit applies after ordering.
func (r *followRepository) ListFollowing(ctx context.Context, userID uint, limit int) ([]models.Follow, error) {
	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Preload("Following").
		Where("follower_id = ? AND deleted = ?", userID, false).
		Order("modified DESC, id DESC").
		Limit(limit).
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return follows, nil
}

// ListFollowingIDs returns the IDs of every user userID actively follows.
// Used to build the author set for feed assembly.
func (r *followRepository) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND deleted = ?", userID, false).
		Pluck("following_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// Follow creates the edge or reactivates a soft-deleted one. The unique pair
// index makes the upsert atomic, so concurrent follows cannot duplicate the
// edge.
func (r *followRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	if followerID == followingID {
		return models.NewValidationError("cannot follow yourself")
	}
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO follows (follower_id, following_id, deleted, created_at, modified)
		 VALUES (?, ?, false, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (follower_id, following_id) DO UPDATE SET deleted = false, modified = CURRENT_TIMESTAMP`,
		followerID, followingID,
	).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow soft-deletes the live edge. Unfollowing someone never followed is
// a no-op.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uint) error {
	err := r.db.WithContext(ctx).Exec(
		`UPDATE follows SET deleted = true, modified = CURRENT_TIMESTAMP
		 WHERE follower_id = ? AND following_id = ? AND deleted = false`,
		followerID, followingID,
	).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
