package service

import (
	"context"
	"strings"

	"microblog/internal/models"
	"microblog/internal/repository"
)

const maxPostBodyLength = 5000

// PostService provides post, like and comment business logic.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

// CreatePost publishes a new post, optionally resharing an existing one.
// A retweet may carry an empty body; an original post may not.
func (s *PostService) CreatePost(ctx context.Context, userID uint, body, image string, retweetedPostID *uint) (*models.Post, error) {
	body = strings.TrimSpace(body)
	if retweetedPostID == nil && body == "" {
		return nil, models.NewValidationError("post body cannot be empty")
	}
	if len(body) > maxPostBodyLength {
		return nil, models.NewValidationError("post body too long")
	}

	if retweetedPostID != nil {
		source, err := s.postRepo.GetByID(ctx, *retweetedPostID, 0)
		if err != nil {
			return nil, err
		}
		if source.Deleted {
			return nil, models.NewValidationError("cannot reshare a deleted post")
		}
	}

	post := &models.Post{
		UserID:          userID,
		Body:            body,
		PostImage:       image,
		RetweetedPostID: retweetedPostID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, userID)
}

// DeletePost soft-deletes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("you can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikePost records userID's like on a post. Liking an already-liked post is
// idempotent; liking a deleted post is rejected.
func (s *PostService) LikePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.Deleted {
		return models.NewValidationError("cannot like a deleted post")
	}
	return s.postRepo.Like(ctx, userID, postID)
}

// UnlikePost removes userID's like. A no-op when no live like exists.
func (s *PostService) UnlikePost(ctx context.Context, userID, postID uint) error {
	return s.postRepo.Unlike(ctx, userID, postID)
}

// AddComment attaches a comment to a post. Commenting on a deleted post is
// rejected.
func (s *PostService) AddComment(ctx context.Context, userID, postID uint, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, models.NewValidationError("comment body cannot be empty")
	}

	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return nil, err
	}
	if post.Deleted {
		return nil, models.NewValidationError("cannot comment on a deleted post")
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// DeleteComment soft-deletes a comment. Only the commenter may delete it.
func (s *PostService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewUnauthorizedError("you can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
