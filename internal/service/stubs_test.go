package service

import (
	"context"

	"microblog/internal/models"
)

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint, uint) (*models.Post, error)
	findByAuthorsFn func(context.Context, []uint, int, int, uint, models.VisibilityPolicy) ([]*models.Post, error)
	deleteFn        func(context.Context, uint) error
	likeFn          func(context.Context, uint, uint) error
	unlikeFn        func(context.Context, uint, uint) error
	isLikedFn       func(context.Context, uint, uint) (bool, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) FindByAuthors(ctx context.Context, authorIDs []uint, page, pageSize int, viewerID uint, policy models.VisibilityPolicy) ([]*models.Post, error) {
	return s.findByAuthorsFn(ctx, authorIDs, page, pageSize, viewerID, policy)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(context.Context, *models.Post) error { return nil },
		getByIDFn: func(context.Context, uint, uint) (*models.Post, error) { return &models.Post{}, nil },
		findByAuthorsFn: func(context.Context, []uint, int, int, uint, models.VisibilityPolicy) ([]*models.Post, error) {
			return nil, nil
		},
		deleteFn:  func(context.Context, uint) error { return nil },
		likeFn:    func(context.Context, uint, uint) error { return nil },
		unlikeFn:  func(context.Context, uint, uint) error { return nil },
		isLikedFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
	}
}

type followRepoStub struct {
	getActiveFn        func(context.Context, uint, uint) (*models.Follow, error)
	listFollowersFn    func(context.Context, uint, int) ([]models.Follow, error)
	listFollowingFn    func(context.Context, uint, int) ([]models.Follow, error)
	listFollowingIDsFn func(context.Context, uint) ([]uint, error)
	followFn           func(context.Context, uint, uint) error
	unfollowFn         func(context.Context, uint, uint) error
}

func (s *followRepoStub) GetActive(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.getActiveFn(ctx, followerID, followingID)
}
func (s *followRepoStub) ListFollowers(ctx context.Context, userID uint, limit int) ([]models.Follow, error) {
	return s.listFollowersFn(ctx, userID, limit)
}
func (s *followRepoStub) ListFollowing(ctx context.Context, userID uint, limit int) ([]models.Follow, error) {
	return s.listFollowingFn(ctx, userID, limit)
}
func (s *followRepoStub) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listFollowingIDsFn(ctx, userID)
}
func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.unfollowFn(ctx, followerID, followingID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		getActiveFn:        func(context.Context, uint, uint) (*models.Follow, error) { return nil, nil },
		listFollowersFn:    func(context.Context, uint, int) ([]models.Follow, error) { return nil, nil },
		listFollowingFn:    func(context.Context, uint, int) ([]models.Follow, error) { return nil, nil },
		listFollowingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		followFn:           func(context.Context, uint, uint) error { return nil },
		unfollowFn:         func(context.Context, uint, uint) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getActiveFn     func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	searchFn        func(context.Context, string, int, int) ([]models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetActive(ctx context.Context, id uint) (*models.User, error) {
	return s.getActiveFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Search(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	return s.searchFn(ctx, query, limit, offset)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getActiveFn:     func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		searchFn:        func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
	}
}

type commentRepoStub struct {
	createFn  func(context.Context, *models.Comment) error
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:  func(context.Context, *models.Comment) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		deleteFn:  func(context.Context, uint) error { return nil },
	}
}
