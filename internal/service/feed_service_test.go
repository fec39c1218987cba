package service

import (
	"context"
	"testing"
	"time"

	"microblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedServiceIncludesOwnAndFollowedAuthors(t *testing.T) {
	follows := noopFollowRepo()
	follows.listFollowingIDsFn = func(context.Context, uint) ([]uint, error) {
		return []uint{2, 3}, nil
	}

	var gotAuthors []uint
	posts := noopPostRepo()
	posts.findByAuthorsFn = func(_ context.Context, authorIDs []uint, page, pageSize int, viewerID uint, _ models.VisibilityPolicy) ([]*models.Post, error) {
		gotAuthors = authorIDs
		return nil, nil
	}

	svc := NewFeedService(posts, follows)
	_, err := svc.FetchFeed(context.Background(), 1, 1, 10, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{1, 2, 3}, gotAuthors, "feed covers self plus followings")
}

func TestFeedServiceUserPostsSingleAuthor(t *testing.T) {
	follows := noopFollowRepo()
	follows.listFollowingIDsFn = func(context.Context, uint) ([]uint, error) {
		t.Fatal("single-author listing must not consult the follow graph")
		return nil, nil
	}

	var gotAuthors []uint
	posts := noopPostRepo()
	posts.findByAuthorsFn = func(_ context.Context, authorIDs []uint, page, pageSize int, viewerID uint, _ models.VisibilityPolicy) ([]*models.Post, error) {
		gotAuthors = authorIDs
		return nil, nil
	}

	svc := NewFeedService(posts, follows)
	page, err := svc.FetchUserPosts(context.Background(), 4, 1, 10, 9)
	require.NoError(t, err)
	assert.Equal(t, []uint{4}, gotAuthors, "filter is the target user alone")
	assert.NotNil(t, page)
	assert.Empty(t, page, "a user with no posts gets an empty page")
}

func TestFeedServiceUserPostsEmptyPageBranches(t *testing.T) {
	posts := noopPostRepo()
	posts.findByAuthorsFn = func(context.Context, []uint, int, int, uint, models.VisibilityPolicy) ([]*models.Post, error) {
		t.Fatal("repository must not be hit for degenerate requests")
		return nil, nil
	}
	svc := NewFeedService(posts, noopFollowRepo())

	for _, args := range []struct {
		userID   uint
		page     int
		pageSize int
	}{{0, 1, 10}, {1, 0, 10}, {1, 1, -3}} {
		page, err := svc.FetchUserPosts(context.Background(), args.userID, args.page, args.pageSize, 0)
		require.NoError(t, err)
		assert.NotNil(t, page)
		assert.Empty(t, page)
	}
}

func TestFeedServiceGetPostDeletedVisibility(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(context.Context, uint, uint) (*models.Post, error) {
		return &models.Post{ID: 5, Body: "gone", Deleted: true}, nil
	}

	t.Run("filtering policy reports not found", func(t *testing.T) {
		svc := NewFeedService(posts, noopFollowRepo())
		_, err := svc.GetPost(context.Background(), 5, 0)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	})

	t.Run("unfiltered policy returns the post", func(t *testing.T) {
		svc := NewFeedServiceWithPolicy(posts, noopFollowRepo(), models.VisibilityPolicy{FilterPosts: false})
		post, err := svc.GetPost(context.Background(), 5, 0)
		require.NoError(t, err)
		assert.Equal(t, "gone", post.Body)
	})
}

func TestFeedServiceEmptyPageBranches(t *testing.T) {
	posts := noopPostRepo()
	posts.findByAuthorsFn = func(context.Context, []uint, int, int, uint, models.VisibilityPolicy) ([]*models.Post, error) {
		t.Fatal("repository must not be hit for degenerate requests")
		return nil, nil
	}
	svc := NewFeedService(posts, noopFollowRepo())

	cases := []struct {
		name     string
		userID   uint
		page     int
		pageSize int
	}{
		{"missing user", 0, 1, 10},
		{"zero page", 1, 0, 10},
		{"negative page", 1, -2, 10},
		{"zero page size", 1, 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feed, err := svc.FetchFeed(context.Background(), tc.userID, tc.page, tc.pageSize, 0)
			require.NoError(t, err)
			assert.NotNil(t, feed)
			assert.Empty(t, feed)
		})
	}
}

func TestFeedServiceProjection(t *testing.T) {
	created := time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)
	sourceID := uint(7)

	posts := noopPostRepo()
	posts.findByAuthorsFn = func(context.Context, []uint, int, int, uint, models.VisibilityPolicy) ([]*models.Post, error) {
		return []*models.Post{{
			ID:        11,
			Body:      "look at this",
			UserID:    1,
			User:      models.User{ID: 1, Username: "alice", Email: "alice@example.com", Deleted: true},
			Liked:     true,
			LikesCount:    3,
			CommentsCount: 8,
			CreatedAt: created,
			RetweetedPostID: &sourceID,
			RetweetedPost: &models.Post{
				ID:      sourceID,
				Body:    "original",
				Deleted: true,
				User:    models.User{ID: 2, Username: "bob"},
			},
			RecentComments: []models.Comment{{
				ID:      21,
				Body:    "nice",
				Deleted: true,
				User:    models.User{ID: 3, Username: "carol"},
			}},
		}}, nil
	}

	svc := NewFeedService(posts, noopFollowRepo())
	feed, err := svc.FetchFeed(context.Background(), 1, 1, 10, 1)
	require.NoError(t, err)
	require.Len(t, feed, 1)

	p := feed[0]
	assert.Equal(t, "alice", p.Author.Username)
	assert.True(t, p.Author.Deleted, "deleted author still rendered, flagged")
	assert.True(t, p.Liked)
	assert.Equal(t, 3, p.LikesCount)
	assert.Equal(t, 8, p.CommentsCount)
	assert.Equal(t, created, p.CreatedAt)

	require.NotNil(t, p.RetweetSource)
	assert.True(t, p.RetweetSource.Deleted)
	assert.Equal(t, "bob", p.RetweetSource.Author.Username)

	require.Len(t, p.RecentComments, 1)
	assert.True(t, p.RecentComments[0].Deleted)
	assert.Equal(t, "carol", p.RecentComments[0].Commenter.Username)
}

func TestFeedServiceEnrichedPostNeverLeaksEmail(t *testing.T) {
	posts := noopPostRepo()
	posts.findByAuthorsFn = func(context.Context, []uint, int, int, uint, models.VisibilityPolicy) ([]*models.Post, error) {
		return []*models.Post{{
			ID:   1,
			User: models.User{ID: 1, Username: "alice", Email: "secret@example.com"},
		}}, nil
	}

	svc := NewFeedService(posts, noopFollowRepo())
	feed, err := svc.FetchFeed(context.Background(), 1, 1, 10, 0)
	require.NoError(t, err)

	// UserSummary has no email field; the projection is the privacy boundary.
	assert.Equal(t, models.UserSummary{ID: 1, Username: "alice"}, feed[0].Author)
}
