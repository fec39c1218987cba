package seed

import (
	"os"
	"path/filepath"
	"testing"

	"microblog/internal/database"
	"microblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeedSocialMesh(t *testing.T) {
	db := newTestDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true, FollowDensity: 0.5})

	users, err := seeder.SeedSocialMesh(8)
	require.NoError(t, err)
	assert.Len(t, users, 8)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(8), userCount)

	// Fixed accounts come first so developers have stable logins.
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "password123", users[0].Password)

	var activated int64
	require.NoError(t, db.Model(&models.User{}).Where("activated = ?", true).Count(&activated).Error)
	assert.Equal(t, int64(8), activated)

	var edges []models.Follow
	require.NoError(t, db.Find(&edges).Error)
	seen := make(map[[2]uint]bool)
	for _, e := range edges {
		assert.NotEqual(t, e.FollowerID, e.FollowingID, "self-follow seeded")
		pair := [2]uint{e.FollowerID, e.FollowingID}
		assert.False(t, seen[pair], "duplicate follow edge seeded")
		seen[pair] = true
	}
}

func TestSeedEngagement(t *testing.T) {
	db := newTestDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true, MaxDays: 10})

	users, err := seeder.SeedSocialMesh(5)
	require.NoError(t, err)

	posts, err := seeder.SeedEngagement(users, 40)
	require.NoError(t, err)
	assert.Len(t, posts, 40)

	// Reshares always reference an existing post and postdate it.
	var retweets []models.Post
	require.NoError(t, db.Where("retweeted_post_id IS NOT NULL").Find(&retweets).Error)
	for _, rt := range retweets {
		var source models.Post
		require.NoError(t, db.First(&source, *rt.RetweetedPostID).Error)
		assert.False(t, rt.CreatedAt.Before(source.CreatedAt))
	}

	// One live like per (post, user) pair.
	var likes []models.Like
	require.NoError(t, db.Find(&likes).Error)
	likePairs := make(map[[2]uint]bool)
	for _, l := range likes {
		pair := [2]uint{l.PostID, l.UserID}
		assert.False(t, likePairs[pair], "duplicate like seeded")
		likePairs[pair] = true
	}
}

func TestSeedEngagementWithoutUsers(t *testing.T) {
	db := newTestDB(t)
	seeder := NewSeeder(db, Options{})

	_, err := seeder.SeedEngagement(nil, 10)
	assert.Error(t, err)
}

func TestClearAll(t *testing.T) {
	db := newTestDB(t)
	seeder := NewSeeder(db, Options{SkipBcrypt: true})

	users, err := seeder.SeedSocialMesh(4)
	require.NoError(t, err)
	_, err = seeder.SeedEngagement(users, 10)
	require.NoError(t, err)

	require.NoError(t, seeder.ClearAll())

	for _, model := range []any{&models.Comment{}, &models.Like{}, &models.Follow{}, &models.Post{}, &models.User{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yml")
	content := []byte(`presets:
  - name: demo
    users: 25
    posts: 120
    follow_density: 0.2
    comments_per_post: 3
    likes_per_post: 5
    clean: true
  - name: load
    users: 500
    posts: 5000
    follow_density: 0.05
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	demo, ok := presets["demo"]
	require.True(t, ok)
	assert.Equal(t, 25, demo.Users)
	assert.Equal(t, 120, demo.Posts)
	assert.InDelta(t, 0.2, demo.FollowDensity, 1e-9)
	assert.True(t, demo.Clean)

	opts := demo.Options(Options{SkipBcrypt: true, BatchSize: 50})
	assert.Equal(t, 25, opts.NumUsers)
	assert.True(t, opts.SkipBcrypt)
	assert.Equal(t, 50, opts.BatchSize)
}

func TestLoadPresetsRejectsUnnamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - users: 5\n"), 0o600))

	_, err := LoadPresets(path)
	assert.Error(t, err)
}
