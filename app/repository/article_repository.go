package repository

import (
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
)

// articleRepository implements the ArticleRepository interface
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create creates a new article in the database
func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by its ID with the owning blog loaded
func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Blog").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetOwned resolves an article only when it belongs to the given blog,
// guarding against authors reaching other authors' articles by URL
// manipulation.
func (r *articleRepository) GetOwned(articleID, blogID uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ? AND blog_id = ?", articleID, blogID).First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// GetVisible resolves an article for reading. Published articles are visible
// to anyone; drafts and deleted articles only to the owning blog's author.
func (r *articleRepository) GetVisible(articleID, blogID, viewerUserID uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Blog").Preload("Blog.User").
		Where("id = ? AND blog_id = ?", articleID, blogID).First(&article).Error
	if err != nil {
		return nil, err
	}
	if !article.VisibleTo(viewerUserID) {
		return nil, gorm.ErrRecordNotFound
	}
	return &article, nil
}

// ListByCategory returns a blog's articles in one lifecycle state, most
// recently modified first
func (r *articleRepository) ListByCategory(blogID uint, category string) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("blog_id = ? AND category = ?", blogID, category).
		Order("updated_at DESC").Find(&articles).Error
	return articles, err
}

// ListPublished returns a blog's published articles for the reader view
func (r *articleRepository) ListPublished(blogID uint) ([]models.Article, error) {
	return r.ListByCategory(blogID, models.CategoryPublished)
}

// Update saves changes to an existing article
func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

// SetCategory performs an ownership-scoped lifecycle transition. The blog id
// is part of the WHERE clause so an author can never move another author's
// article; a non-owned or missing article is reported as not found.
func (r *articleRepository) SetCategory(articleID, blogID uint, category string) error {
	res := r.db.Model(&models.Article{}).
		Where("id = ? AND blog_id = ?", articleID, blogID).
		Update("category", category)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews adds one to the article's view counter
func (r *articleRepository) IncrementViews(articleID uint) error {
	return r.db.Model(&models.Article{}).Where("id = ?", articleID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// PermanentDelete removes the article and all comments and likes referencing
// it as one atomic transaction. If any step fails, including the article not
// belonging to the blog, every delete is rolled back.
func (r *articleRepository) PermanentDelete(articleID, blogID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", articleID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND blog_id = ?", articleID, blogID).Delete(&models.Article{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
