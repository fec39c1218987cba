package server

import (
	"microblog/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if followErr := s.followService.Follow(ctx, userID, targetID); followErr != nil {
		return respondServiceError(c, followErr)
	}

	s.publishUserEvent(targetID, notifications.Event{
		Type:    notifications.EventFollow,
		ActorID: userID,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"following": true})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unfollowErr := s.followService.Unfollow(ctx, userID, targetID); unfollowErr != nil {
		return respondServiceError(c, unfollowErr)
	}

	s.publishUserEvent(targetID, notifications.Event{
		Type:    notifications.EventUnfollow,
		ActorID: userID,
	})

	return c.JSON(fiber.Map{"following": false})
}

// GetFollowStatus handles GET /api/users/:id/follow
//
// Anonymous viewers resolve to not-following rather than an auth error.
func (s *Server) GetFollowStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, statusErr := s.followService.IsFollowing(ctx, viewerID(c), targetID)
	if statusErr != nil {
		return respondServiceError(c, statusErr)
	}
	return c.JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /api/users/:id/followers?limit=
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, listErr := s.followService.RecentFollowers(ctx, userID, c.QueryInt("limit", 0))
	if listErr != nil {
		return respondServiceError(c, listErr)
	}
	return c.JSON(fiber.Map{"followers": followers})
}

// GetFollowings handles GET /api/users/:id/followings?limit=
func (s *Server) GetFollowings(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followings, listErr := s.followService.RecentFollowings(ctx, userID, c.QueryInt("limit", 0))
	if listErr != nil {
		return respondServiceError(c, listErr)
	}
	return c.JSON(fiber.Map{"followings": followings})
}
