// Package service contains the business logic layer of the application.
package service

import (
	"context"

	"microblog/internal/models"
	"microblog/internal/observability"
	"microblog/internal/repository"
)

// FeedService assembles enriched post pages for a user's home timeline.
type FeedService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	policy     models.VisibilityPolicy
}

// NewFeedService returns a new FeedService using the default visibility policy.
func NewFeedService(postRepo repository.PostRepository, followRepo repository.FollowRepository) *FeedService {
	return NewFeedServiceWithPolicy(postRepo, followRepo, models.DefaultVisibility())
}

// NewFeedServiceWithPolicy returns a FeedService with an explicit visibility policy.
func NewFeedServiceWithPolicy(postRepo repository.PostRepository, followRepo repository.FollowRepository, policy models.VisibilityPolicy) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		followRepo: followRepo,
		policy:     policy,
	}
}

// FetchFeed returns one page of the home timeline for userID: that user's own
// posts interleaved with posts from everyone they follow, newest first, as
// fully enriched posts. Liked is computed relative to viewerID, which may be
// zero for anonymous viewers. A missing user or a non-positive page/pageSize
// yields an empty page, never an error.
func (s *FeedService) FetchFeed(ctx context.Context, userID uint, page, pageSize int, viewerID uint) ([]models.EnrichedPost, error) {
	if userID == 0 || page <= 0 || pageSize <= 0 {
		return []models.EnrichedPost{}, nil
	}

	followingIDs, err := s.followRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authors := append(followingIDs, userID)

	posts, err := s.postRepo.FindByAuthors(ctx, authors, page, pageSize, viewerID, s.policy)
	if err != nil {
		return nil, err
	}

	feed := make([]models.EnrichedPost, 0, len(posts))
	for _, p := range posts {
		feed = append(feed, enrichPost(p))
	}
	observability.FeedPageSize.Observe(float64(len(feed)))
	return feed, nil
}

// FetchUserPosts returns one page of posts authored by userID alone, newest
// first. This is the single-author listing behind a profile page; the follow
// graph is never consulted, so a user with zero posts always gets an empty
// page no matter who they follow. Pagination follows the same permissive
// contract as FetchFeed.
func (s *FeedService) FetchUserPosts(ctx context.Context, userID uint, page, pageSize int, viewerID uint) ([]models.EnrichedPost, error) {
	if userID == 0 || page <= 0 || pageSize <= 0 {
		return []models.EnrichedPost{}, nil
	}

	posts, err := s.postRepo.FindByAuthors(ctx, []uint{userID}, page, pageSize, viewerID, s.policy)
	if err != nil {
		return nil, err
	}

	feed := make([]models.EnrichedPost, 0, len(posts))
	for _, p := range posts {
		feed = append(feed, enrichPost(p))
	}
	observability.FeedPageSize.Observe(float64(len(feed)))
	return feed, nil
}

// GetPost returns a single enriched post. A soft-deleted post is reported as
// not found when the policy filters posts, matching the list read path.
func (s *FeedService) GetPost(ctx context.Context, id uint, viewerID uint) (*models.EnrichedPost, error) {
	post, err := s.postRepo.GetByID(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	if post.Deleted && s.policy.FilterPosts {
		return nil, models.NewNotFoundError("Post", id)
	}
	enriched := enrichPost(post)
	return &enriched, nil
}

// enrichPost projects a repository post, with its preloaded associations and
// computed columns, into the outward-facing shape. The author summary is
// always present even when the author account is deleted; consumers render
// the Deleted flag.
func enrichPost(p *models.Post) models.EnrichedPost {
	comments := make([]models.CommentView, 0, len(p.RecentComments))
	for _, c := range p.RecentComments {
		comments = append(comments, models.CommentView{
			ID:        c.ID,
			Body:      c.Body,
			Deleted:   c.Deleted,
			Commenter: c.User.Summary(),
			CreatedAt: c.CreatedAt,
		})
	}

	var retweet *models.RetweetView
	if p.RetweetedPost != nil {
		retweet = &models.RetweetView{
			ID:        p.RetweetedPost.ID,
			Body:      p.RetweetedPost.Body,
			PostImage: p.RetweetedPost.PostImage,
			Deleted:   p.RetweetedPost.Deleted,
			Author:    p.RetweetedPost.User.Summary(),
		}
	}

	return models.EnrichedPost{
		ID:             p.ID,
		Body:           p.Body,
		PostImage:      p.PostImage,
		Author:         p.User.Summary(),
		RecentComments: comments,
		RetweetSource:  retweet,
		Liked:          p.Liked,
		LikesCount:     p.LikesCount,
		CommentsCount:  p.CommentsCount,
		CreatedAt:      p.CreatedAt,
	}
}
