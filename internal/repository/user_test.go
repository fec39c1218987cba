package repository

import (
	"context"
	"testing"

	"microblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	active := makeUser(t, db, "alice")

	deleted := makeUser(t, db, "bob")
	require.NoError(t, db.Model(deleted).Update("deleted", true).Error)

	pending := &models.User{Username: "carol", Email: "carol@example.com", Password: "x"}
	require.NoError(t, db.Create(pending).Error)

	t.Run("returns activated non-deleted user", func(t *testing.T) {
		got, err := repo.GetActive(ctx, active.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("deleted user behaves as missing", func(t *testing.T) {
		_, err := repo.GetActive(ctx, deleted.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	})

	t.Run("unactivated user behaves as missing", func(t *testing.T) {
		_, err := repo.GetActive(ctx, pending.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
	})
}

func TestUserRepository_Search(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	makeUser(t, db, "Johnny")
	makeUser(t, db, "john_doe")
	makeUser(t, db, "alice")

	gone := makeUser(t, db, "johnson")
	require.NoError(t, db.Model(gone).Update("deleted", true).Error)

	pending := &models.User{Username: "johncandidate", Email: "jc@example.com", Password: "x"}
	require.NoError(t, db.Create(pending).Error)

	t.Run("case-insensitive substring on username", func(t *testing.T) {
		users, err := repo.Search(ctx, "JOHN", 50, 0)
		require.NoError(t, err)
		names := usernames(users)
		assert.ElementsMatch(t, []string{"Johnny", "john_doe"}, names)
	})

	t.Run("matches email too", func(t *testing.T) {
		users, err := repo.Search(ctx, "alice@example", 50, 0)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Username)
	})

	t.Run("LIKE metacharacters are literal", func(t *testing.T) {
		users, err := repo.Search(ctx, "%", 50, 0)
		require.NoError(t, err)
		assert.Empty(t, users, "a bare wildcard must not match everything")

		users, err = repo.Search(ctx, "john_", 50, 0)
		require.NoError(t, err)
		names := usernames(users)
		assert.Equal(t, []string{"john_doe"}, names, "underscore must not match any single character")
	})

	t.Run("excludes deleted and unactivated accounts", func(t *testing.T) {
		users, err := repo.Search(ctx, "john", 50, 0)
		require.NoError(t, err)
		for _, u := range users {
			assert.NotEqual(t, "johnson", u.Username)
			assert.NotEqual(t, "johncandidate", u.Username)
		}
	})

	t.Run("empty query matches all active users", func(t *testing.T) {
		users, err := repo.Search(ctx, "", 50, 0)
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	makeUser(t, db, "dave")

	err := repo.Create(ctx, &models.User{Username: "dave", Email: "other@example.com", Password: "x"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeValidation, appErr.Code)
}

func usernames(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Username)
	}
	return out
}
