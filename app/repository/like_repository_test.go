package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherpress/featherpress/app/models"
)

func TestLikeRepositoryLikeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	articles := NewArticleRepository(db)

	user, blog := seedAuthor(t, db, "alice")
	article := seedArticle(t, db, blog.ID, models.CategoryPublished)

	require.NoError(t, repo.Like(user.ID, article.ID))
	require.NoError(t, repo.Like(user.ID, article.ID))

	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Where("article_id = ?", article.ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)

	got, err := articles.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Likes)

	liked, err := repo.HasLiked(user.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeRepositoryUnlike(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	articles := NewArticleRepository(db)

	user, blog := seedAuthor(t, db, "alice")
	article := seedArticle(t, db, blog.ID, models.CategoryPublished)

	require.NoError(t, repo.Like(user.ID, article.ID))
	require.NoError(t, repo.Unlike(user.ID, article.ID))

	got, err := articles.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes)

	liked, err := repo.HasLiked(user.ID, article.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeRepositoryUnlikeWithoutLikeIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	articles := NewArticleRepository(db)

	user, blog := seedAuthor(t, db, "alice")
	article := seedArticle(t, db, blog.ID, models.CategoryPublished)

	require.NoError(t, repo.Unlike(user.ID, article.ID))
	require.NoError(t, repo.Unlike(user.ID, article.ID))

	// The counter never drifts below zero
	got, err := articles.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Likes)
}

func TestLikeRepositoryListByArticle(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)

	alice, blog := seedAuthor(t, db, "alice")
	bob, _ := seedAuthor(t, db, "bob")
	article := seedArticle(t, db, blog.ID, models.CategoryPublished)

	require.NoError(t, repo.Like(alice.ID, article.ID))
	require.NoError(t, repo.Like(bob.ID, article.ID))

	likes, err := repo.ListByArticle(article.ID)
	require.NoError(t, err)
	require.Len(t, likes, 2)

	// Newest first; equal timestamps fall back to the higher id
	assert.Equal(t, "bob", likes[0].User.Username)
	assert.Equal(t, "alice", likes[1].User.Username)
}
