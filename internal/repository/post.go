package repository

import (
	"context"
	"errors"

	"microblog/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error)
	FindByAuthors(ctx context.Context, authorIDs []uint, page, pageSize int, viewerID uint, policy models.VisibilityPolicy) ([]*models.Post, error)
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), viewerID, models.DefaultVisibility()).
		Preload("User").
		Preload("RetweetedPost").
		Preload("RetweetedPost.User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.loadRecentComments(ctx, []*models.Post{&post}, models.DefaultVisibility()); err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByAuthors returns one page of posts authored by the given users, most
// recent first. A non-positive page or page size yields an empty page rather
// than an error, as does an empty author set.
func (r *postRepository) FindByAuthors(ctx context.Context, authorIDs []uint, page, pageSize int, viewerID uint, policy models.VisibilityPolicy) ([]*models.Post, error) {
	if page <= 0 || pageSize <= 0 || len(authorIDs) == 0 {
		return []*models.Post{}, nil
	}

	q := r.applyPostDetails(r.db.WithContext(ctx), viewerID, policy).
		Preload("User").
		Preload("RetweetedPost").
		Preload("RetweetedPost.User").
		Where("posts.user_id IN ?", authorIDs)
	if policy.FilterPosts {
		q = q.Where("posts.deleted = ?", false)
	}

	var posts []*models.Post
	// id DESC breaks created_at ties so pages never shift between requests.
	err := q.Order("posts.created_at DESC, posts.id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.loadRecentComments(ctx, posts, policy); err != nil {
		return nil, err
	}
	return posts, nil
}

// applyPostDetails adds subqueries to fetch counts and liked status in a single query.
// Soft-deleted likes never count; comment counting follows the visibility policy.
func (r *postRepository) applyPostDetails(db *gorm.DB, viewerID uint, policy models.VisibilityPolicy) *gorm.DB {
	commentFilter := ""
	if policy.FilterComments {
		commentFilter = " AND comments.deleted = false"
	}
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id" + commentFilter + ") AS comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id AND likes.deleted = false) AS likes_count"

	if viewerID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ? AND likes.deleted = false) AS liked", viewerID)
	}
	return db.Select(selectQuery + ", false AS liked")
}

// loadRecentComments batch-fetches the most recent few comments per post for
// the page. The fetch is bounded in the database with a per-post window
// ranking, so a heavily commented post never drags its whole thread through
// the ORM. Deleted comments are kept unless the policy filters them; the
// consumer renders them flagged.
func (r *postRepository) loadRecentComments(ctx context.Context, posts []*models.Post, policy models.VisibilityPolicy) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	ranked := r.db.Table("comments").
		Select("id AS comment_id, ROW_NUMBER() OVER (PARTITION BY post_id ORDER BY created_at DESC, id DESC) AS rn").
		Where("post_id IN ?", ids)
	if policy.FilterComments {
		ranked = ranked.Where("deleted = ?", false)
	}
	top := r.db.Table("(?) AS ranked", ranked).
		Select("comment_id").
		Where("rn <= ?", models.RecentCommentsBound)

	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id IN (?)", top).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return models.NewInternalError(err)
	}

	// The global order is newest first, so per-post slices come out ordered.
	byPost := make(map[uint][]models.Comment, len(posts))
	for _, c := range comments {
		byPost[c.PostID] = append(byPost[c.PostID], c)
	}
	for _, p := range posts {
		p.RecentComments = byPost[p.ID]
		if p.RecentComments == nil {
			p.RecentComments = []models.Comment{}
		}
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	// Atomic upsert: a previously soft-deleted like is reactivated in place,
	// so there is never more than one row per (post, user) pair.
	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (post_id, user_id, deleted, created_at, updated_at)
		 VALUES (?, ?, false, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		 ON CONFLICT (post_id, user_id) DO UPDATE SET deleted = false, updated_at = CURRENT_TIMESTAMP`,
		postID, userID,
	).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	// Idempotent: unliking something never liked is a no-op.
	err := r.db.WithContext(ctx).Exec(
		`UPDATE likes SET deleted = true, updated_at = CURRENT_TIMESTAMP
		 WHERE post_id = ? AND user_id = ? AND deleted = false`,
		postID, userID,
	).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ? AND deleted = ?", userID, postID, false).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
