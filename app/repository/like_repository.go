package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
)

// likeRepository implements the LikeRepository interface
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository instance
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like records that a user liked an article and increments the derived
// counter. Liking an already-liked article is a no-op: the existence check
// catches the common case and the unique index on (user_id, article_id)
// settles concurrent duplicates, so the counter is bumped at most once per
// (user, article) pair.
func (r *likeRepository) Like(userID, articleID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND article_id = ?", userID, articleID).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.Like{UserID: userID, ArticleID: articleID}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return err
		}

		return tx.Model(&models.Article{}).Where("id = ?", articleID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error
	})
}

// Unlike removes the user's like and decrements the counter, but only when a
// like row was actually deleted so the counter cannot drift below zero.
func (r *likeRepository) Unlike(userID, articleID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND article_id = ?", userID, articleID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&models.Article{}).Where("id = ? AND likes > 0", articleID).
			UpdateColumn("likes", gorm.Expr("likes - 1")).Error
	})
}

// HasLiked reports whether the user has liked the article
func (r *likeRepository) HasLiked(userID, articleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).Count(&count).Error
	return count > 0, err
}

// ListByArticle returns an article's likes newest first with users loaded
func (r *likeRepository) ListByArticle(articleID uint) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.Preload("User").Where("article_id = ?", articleID).
		Order("created_at DESC, id DESC").Find(&likes).Error
	return likes, err
}
