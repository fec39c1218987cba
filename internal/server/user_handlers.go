package server

import (
	"github.com/gofiber/fiber/v2"
)

// SearchUsers handles GET /api/users/search?q=&page=&page_size=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	p := parsePagination(c)

	results, err := s.searchService.SearchUsers(ctx, c.Query("q"), p.Page, p.PageSize)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":     results,
		"page":      p.Page,
		"page_size": p.PageSize,
	})
}

// GetProfile handles GET /api/users/:id
//
// Deleted and not-yet-activated accounts respond 404; the Followed flag is
// relative to the optional bearer token.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, getErr := s.userService.GetProfile(ctx, userID, viewerID(c))
	if getErr != nil {
		return respondServiceError(c, getErr)
	}
	return c.JSON(profile)
}
