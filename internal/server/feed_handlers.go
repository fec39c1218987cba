package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed?user_id=&page=&page_size=
//
// The feed belongs to user_id (their posts plus everyone they follow);
// viewer-relative fields like Liked are computed from the optional bearer
// token. A missing or degenerate user_id yields an empty page, matching the
// permissive pagination contract.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	ctx := c.Context()
	p := parsePagination(c)

	userID := c.QueryInt("user_id", 0)
	if userID < 0 {
		userID = 0
	}

	feed, err := s.feedService.FetchFeed(ctx, uint(userID), p.Page, p.PageSize, viewerID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":     feed,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}

// GetUserPosts handles GET /api/users/:id/posts?page=&page_size=
//
// Only posts authored by :id are returned; followed users never contribute.
// Viewer-relative fields come from the optional bearer token.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	p := parsePagination(c)

	posts, listErr := s.feedService.FetchUserPosts(ctx, userID, p.Page, p.PageSize, viewerID(c))
	if listErr != nil {
		return respondServiceError(c, listErr)
	}

	return c.JSON(fiber.Map{
		"posts":     posts,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.feedService.GetPost(ctx, postID, viewerID(c))
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	return c.JSON(post)
}
