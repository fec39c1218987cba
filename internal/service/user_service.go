package service

import (
	"context"

	"microblog/internal/models"
	"microblog/internal/repository"
)

// UserService provides profile business logic.
type UserService struct {
	userRepo      repository.UserRepository
	followService *FollowService
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followService *FollowService) *UserService {
	return &UserService{
		userRepo:      userRepo,
		followService: followService,
	}
}

// GetProfile assembles the outward-facing profile of targetID as seen by
// viewerID: the user summary, whether the viewer follows them, and the most
// recent followers and followings. Deleted or unactivated accounts behave as
// missing.
func (s *UserService) GetProfile(ctx context.Context, targetID, viewerID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetActive(ctx, targetID)
	if err != nil {
		return nil, err
	}

	followed, err := s.followService.IsFollowing(ctx, viewerID, targetID)
	if err != nil {
		return nil, err
	}

	followers, err := s.followService.RecentFollowers(ctx, targetID, defaultFollowListLimit)
	if err != nil {
		return nil, err
	}
	followings, err := s.followService.RecentFollowings(ctx, targetID, defaultFollowListLimit)
	if err != nil {
		return nil, err
	}

	return &models.Profile{
		User:       user.Summary(),
		Followed:   followed,
		Followers:  followers,
		Followings: followings,
	}, nil
}
