package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/app/repository"
	"github.com/featherpress/featherpress/internal/pkg/statistics"
	"github.com/featherpress/featherpress/internal/pkg/usercontext"
)

// resolveEngagementArticle applies the same visibility predicate as rendering:
// readers can only engage with articles they are allowed to view.
func resolveEngagementArticle(c *fiber.Ctx) (*models.Article, uint, error) {
	userCtx := usercontext.GetUserContext(c)

	blogID := paramID(c, "blogId")
	articleID := paramID(c, "articleId")
	if blogID == 0 || articleID == 0 {
		return nil, blogID, gorm.ErrRecordNotFound
	}

	article, err := repository.GetGlobalRepositories().Article.GetVisible(articleID, blogID, userCtx.UserID)
	return article, blogID, err
}

func articleURL(blogID, articleID uint) string {
	return fmt.Sprintf("/reader/blog/%d/article/%d", blogID, articleID)
}

// HandleComment appends a comment to a visible article
func HandleComment(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	article, blogID, err := resolveEngagementArticle(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	body := c.FormValue("comment")
	if body == "" {
		fm := fiber.Map{
			"type":    "error",
			"message": "Comment cannot be empty",
		}
		return flash.WithError(c, fm).Redirect(articleURL(blogID, article.ID) + "#comments")
	}

	comment := &models.Comment{
		ArticleID: article.ID,
		UserID:    userCtx.UserID,
		Body:      body,
	}
	if err := repository.GetGlobalRepositories().Comment.Create(comment); err != nil {
		return renderServerError(c, err)
	}

	statistics.ResetCacheUpdateTimer()

	return c.Redirect(articleURL(blogID, article.ID)+"#comments", fiber.StatusSeeOther)
}

// HandleLike records a like; liking twice is a silent no-op
func HandleLike(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	article, blogID, err := resolveEngagementArticle(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	if err := repository.GetGlobalRepositories().Like.Like(userCtx.UserID, article.ID); err != nil {
		return renderServerError(c, err)
	}

	return c.Redirect(articleURL(blogID, article.ID), fiber.StatusSeeOther)
}

// HandleUnlike removes a like; unliking a never-liked article is a silent no-op
func HandleUnlike(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	article, blogID, err := resolveEngagementArticle(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	if err := repository.GetGlobalRepositories().Like.Unlike(userCtx.UserID, article.ID); err != nil {
		return renderServerError(c, err)
	}

	return c.Redirect(articleURL(blogID, article.ID), fiber.StatusSeeOther)
}
