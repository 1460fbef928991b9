package repository

import (
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
)

// blogRepository implements the BlogRepository interface
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository instance
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create creates a new blog in the database
func (r *blogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// GetByID retrieves a blog by its ID with the owning user loaded
func (r *blogRepository) GetByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("User").First(&blog, id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetByUserID retrieves the blog owned by the given user
func (r *blogRepository) GetByUserID(userID uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Update saves changes to an existing blog
func (r *blogRepository) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// ListWithAuthors returns every blog joined with its author's display name
// and the count of published articles
func (r *blogRepository) ListWithAuthors() ([]BlogWithAuthor, error) {
	var rows []BlogWithAuthor
	err := r.db.Model(&models.Blog{}).
		Select("blogs.id, blogs.title, users.display_name, COUNT(articles.id) AS article_count").
		Joins("JOIN users ON users.id = blogs.user_id").
		Joins("LEFT JOIN articles ON articles.blog_id = blogs.id AND articles.category = ?", models.CategoryPublished).
		Group("blogs.id, blogs.title, users.display_name").
		Order("blogs.id").
		Scan(&rows).Error
	return rows, err
}
