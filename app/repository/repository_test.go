package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/featherpress/featherpress/app/models"
)

// newTestDB opens an isolated in-memory database for one test. The database
// is named after the test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Article{},
		&models.Comment{},
		&models.Like{},
	))

	return db
}

// seedAuthor creates a user together with their blog
func seedAuthor(t *testing.T, db *gorm.DB, username string) (*models.User, *models.Blog) {
	t.Helper()

	user := &models.User{Username: username, DisplayName: username, Password: "x"}
	require.NoError(t, db.Create(user).Error)

	blog := &models.Blog{Title: username + "'s blog", UserID: user.ID}
	require.NoError(t, db.Create(blog).Error)

	return user, blog
}

func seedArticle(t *testing.T, db *gorm.DB, blogID uint, category string) *models.Article {
	t.Helper()

	article := &models.Article{
		BlogID:   blogID,
		Category: category,
		Title:    "Title",
		Body:     "<p>Body</p>",
	}
	require.NoError(t, db.Create(article).Error)

	return article
}
