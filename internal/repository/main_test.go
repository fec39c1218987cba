package repository

import (
	"fmt"
	"testing"
	"time"

	"microblog/internal/database"
	"microblog/internal/models"

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

func makeUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:  username,
		Email:     fmt.Sprintf("%s@example.com", username),
		Password:  "hashed",
		Activated: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func makePost(t *testing.T, db *gorm.DB, userID uint, body string, createdAt time.Time) *models.Post {
	t.Helper()
	p := &models.Post{
		UserID:    userID,
		Body:      body,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
