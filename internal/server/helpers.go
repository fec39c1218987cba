package server

import (
	"errors"

	"microblog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed page/page_size query parameters.
type Pagination struct {
	Page     int
	PageSize int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePagination extracts page and page_size query parameters. Degenerate
// values are passed through as-is (the services turn them into empty pages),
// only the upper bound is clamped.
func parsePagination(c *fiber.Ctx) Pagination {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// viewerID returns the authenticated user ID from locals, or zero for
// anonymous requests.
func viewerID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// respondServiceError maps an AppError to its HTTP status. Unknown errors
// are treated as internal.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.ErrCodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, appErr)
		case models.ErrCodeValidation:
			return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
		case models.ErrCodeUnauthorized:
			return models.RespondWithError(c, fiber.StatusForbidden, appErr)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
