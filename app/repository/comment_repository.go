package repository

import (
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create appends a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByArticle returns an article's comments newest first with authors loaded
func (r *commentRepository) ListByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Where("article_id = ?", articleID).
		Order("created_at DESC, id DESC").Find(&comments).Error
	return comments, err
}

// Count returns the total number of comments
func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
