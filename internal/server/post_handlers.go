package server

import (
	"microblog/internal/models"
	"microblog/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// CreatePostRequest is the payload for publishing a post.
type CreatePostRequest struct {
	Body            string `json:"body"`
	PostImage       string `json:"post_image"`
	RetweetedPostID *uint  `json:"retweeted_post_id"`
}

// CreateCommentRequest is the payload for commenting on a post.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, userID, req.Body, req.PostImage, req.RetweetedPostID)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Tell the original author their post got reshared.
	if post.RetweetedPost != nil && post.RetweetedPost.UserID != userID {
		s.publishUserEvent(post.RetweetedPost.UserID, notifications.Event{
			Type:    notifications.EventPost,
			ActorID: userID,
			PostID:  post.ID,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if deleteErr := s.postService.DeletePost(ctx, userID, postID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, getErr := s.postRepo.GetByID(ctx, postID, 0)
	if getErr != nil {
		return respondServiceError(c, getErr)
	}

	if likeErr := s.postService.LikePost(ctx, userID, postID); likeErr != nil {
		return respondServiceError(c, likeErr)
	}

	if post.UserID != userID {
		s.publishUserEvent(post.UserID, notifications.Event{
			Type:    notifications.EventLike,
			ActorID: userID,
			PostID:  postID,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"liked": true})
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if unlikeErr := s.postService.UnlikePost(ctx, userID, postID); unlikeErr != nil {
		return respondServiceError(c, unlikeErr)
	}
	return c.JSON(fiber.Map{"liked": false})
}

// CreateComment handles POST /api/posts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req CreateCommentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, createErr := s.postService.AddComment(ctx, userID, postID, req.Body)
	if createErr != nil {
		return respondServiceError(c, createErr)
	}

	if post, getErr := s.postRepo.GetByID(ctx, postID, 0); getErr == nil && post.UserID != userID {
		s.publishUserEvent(post.UserID, notifications.Event{
			Type:    notifications.EventComment,
			ActorID: userID,
			PostID:  postID,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment handles DELETE /api/posts/:id/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	if _, err := s.parseID(c, "id"); err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if deleteErr := s.postService.DeleteComment(ctx, userID, commentID); deleteErr != nil {
		return respondServiceError(c, deleteErr)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
