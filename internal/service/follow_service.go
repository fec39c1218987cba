package service

import (
	"context"

	"microblog/internal/cache"
	"microblog/internal/models"
	"microblog/internal/repository"
)

const defaultFollowListLimit = 5

// FollowService provides follow-graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// IsFollowing reports whether viewerID actively follows targetID. The answer
// is cached per (viewer, target) pair; an anonymous viewer never follows
// anyone.
func (s *FollowService) IsFollowing(ctx context.Context, viewerID, targetID uint) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}

	var following bool
	err := cache.Aside(ctx, cache.FollowStatusKey(viewerID, targetID), &following, cache.FollowStatusTTL, func() error {
		edge, err := s.followRepo.GetActive(ctx, viewerID, targetID)
		if err != nil {
			return err
		}
		following = edge != nil
		return nil
	})
	if err != nil {
		return false, err
	}
	return following, nil
}

// Follow creates or reactivates the edge from followerID to targetID. The
// target must be an activated, non-deleted account.
func (s *FollowService) Follow(ctx context.Context, followerID, targetID uint) error {
	if followerID == targetID {
		return models.NewValidationError("cannot follow yourself")
	}
	if _, err := s.userRepo.GetActive(ctx, targetID); err != nil {
		return err
	}
	if err := s.followRepo.Follow(ctx, followerID, targetID); err != nil {
		return err
	}
	cache.InvalidateFollowStatus(ctx, followerID, targetID)
	return nil
}

// Unfollow soft-deletes the edge. Unfollowing someone never followed is a
// no-op rather than an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, targetID uint) error {
	if err := s.followRepo.Unfollow(ctx, followerID, targetID); err != nil {
		return err
	}
	cache.InvalidateFollowStatus(ctx, followerID, targetID)
	return nil
}

// RecentFollowers returns the users who most recently followed userID.
func (s *FollowService) RecentFollowers(ctx context.Context, userID uint, limit int) ([]models.FollowEntry, error) {
	follows, err := s.followRepo.ListFollowers(ctx, userID, clampFollowLimit(limit))
	if err != nil {
		return nil, err
	}
	entries := make([]models.FollowEntry, 0, len(follows))
	for _, f := range follows {
		entries = append(entries, models.FollowEntry{
			User:     f.Follower.Summary(),
			EdgeID:   f.ID,
			Modified: f.Modified,
		})
	}
	return entries, nil
}

// RecentFollowings returns the users userID most recently followed.
func (s *FollowService) RecentFollowings(ctx context.Context, userID uint, limit int) ([]models.FollowEntry, error) {
	follows, err := s.followRepo.ListFollowing(ctx, userID, clampFollowLimit(limit))
	if err != nil {
		return nil, err
	}
	entries := make([]models.FollowEntry, 0, len(follows))
	for _, f := range follows {
		entries = append(entries, models.FollowEntry{
			User:     f.Following.Summary(),
			EdgeID:   f.ID,
			Modified: f.Modified,
		})
	}
	return entries, nil
}

func clampFollowLimit(limit int) int {
	if limit <= 0 {
		return defaultFollowListLimit
	}
	if limit > 100 {
		return 100
	}
	return limit
}
