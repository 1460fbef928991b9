package repository

import (
	"errors"

	"github.com/featherpress/featherpress/app/models"
)

// ErrDuplicateUsername is returned by UserRepository.Create when the unique
// index on users.username rejects the insert. The constraint, not the
// pre-check, is the authoritative duplicate signal.
var ErrDuplicateUsername = errors.New("username already taken")

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// BlogRepository defines the interface for blog-related database operations
type BlogRepository interface {
	Create(blog *models.Blog) error
	GetByID(id uint) (*models.Blog, error)
	GetByUserID(userID uint) (*models.Blog, error)
	Update(blog *models.Blog) error
	// ListWithAuthors returns every blog with its author's display name and
	// the number of published articles, for the reader home page.
	ListWithAuthors() ([]BlogWithAuthor, error)
}

// BlogWithAuthor is the reader-home row: blog, author, published count.
type BlogWithAuthor struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	DisplayName  string `json:"display_name"`
	ArticleCount int    `json:"article_count"`
}

// ArticleRepository defines the interface for article-related database
// operations, including the lifecycle transitions.
type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	// GetOwned resolves an article only when it belongs to the given blog.
	GetOwned(articleID, blogID uint) (*models.Article, error)
	// GetVisible resolves an article for reading: published articles for
	// everyone, drafts and deleted articles only for the owning author.
	GetVisible(articleID, blogID, viewerUserID uint) (*models.Article, error)
	ListByCategory(blogID uint, category string) ([]models.Article, error)
	ListPublished(blogID uint) ([]models.Article, error)
	Update(article *models.Article) error
	// SetCategory performs an ownership-scoped lifecycle transition.
	SetCategory(articleID, blogID uint, category string) error
	IncrementViews(articleID uint) error
	// PermanentDelete removes the article together with its comments and
	// likes as one atomic transaction.
	PermanentDelete(articleID, blogID uint) error
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	// ListByArticle returns comments newest first with their authors loaded.
	ListByArticle(articleID uint) ([]models.Comment, error)
	Count() (int64, error)
}

// LikeRepository defines the interface for like-related database operations.
// Like and Unlike keep the derived articles.likes counter in step with the
// rows that justify it.
type LikeRepository interface {
	// Like records a like; liking an already-liked article is a no-op.
	Like(userID, articleID uint) error
	// Unlike removes a like; unliking a never-liked article is a no-op and
	// the counter never goes negative.
	Unlike(userID, articleID uint) error
	HasLiked(userID, articleID uint) (bool, error)
	// ListByArticle returns likes newest first with their users loaded.
	ListByArticle(articleID uint) ([]models.Like, error)
}
