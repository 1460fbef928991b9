package controllers

import (
	"errors"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/repository"
	"github.com/featherpress/featherpress/internal/pkg/htmltext"
	"github.com/featherpress/featherpress/internal/pkg/statistics"
	"github.com/featherpress/featherpress/internal/pkg/usercontext"
	"github.com/featherpress/featherpress/internal/pkg/viewmodel"
)

// HandleReaderHome lists every blog with its author and published-article
// count, plus the cached platform statistics
func HandleReaderHome(c *fiber.Ctx) error {
	blogs, err := repository.GetGlobalRepositories().Blog.ListWithAuthors()
	if err != nil {
		return renderServerError(c, err)
	}

	return c.Render("reader/home", fiber.Map{
		"Layout": layoutFor(c, "Home (reader)", flash.Get(c)),
		"Blogs":  blogs,
		"Stats":  statistics.GetStatisticsData(),
	}, "layouts/main")
}

// HandleReaderBlog shows a blog's published articles as previews. An unknown
// blog id (possibly URL manipulation) bounces back to the blog selection.
func HandleReaderBlog(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	blogID := paramID(c, "blogId")
	if blogID == 0 {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	}

	blog, err := repos.Blog.GetByID(blogID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	published, err := repos.Article.ListPublished(blog.ID)
	if err != nil {
		return renderServerError(c, err)
	}

	return c.Render("reader/blog", fiber.Map{
		"Layout":      layoutFor(c, "Select article", flash.Get(c)),
		"BlogID":      blog.ID,
		"BlogTitle":   blog.Title,
		"DisplayName": blog.User.DisplayName,
		"Articles":    articleRows(published),
	}, "layouts/main")
}

// HandleReaderArticle renders the full article with comments and like state.
// Every render counts one view, the author's own and repeated anonymous
// visits included. Drafts and deleted articles are only reachable by the
// owning author; everyone else bounces back to the blog page.
func HandleReaderArticle(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	userCtx := usercontext.GetUserContext(c)

	blogID := paramID(c, "blogId")
	articleID := paramID(c, "articleId")
	if blogID == 0 || articleID == 0 {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	}

	if _, err := repos.Blog.GetByID(blogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Redirect("/reader", fiber.StatusSeeOther)
		}
		return renderServerError(c, err)
	}

	// Count the view before the visibility query, matching the observed
	// behaviour: no dedup and no session-based suppression.
	if err := repos.Article.IncrementViews(articleID); err != nil {
		return renderServerError(c, err)
	}

	article, err := repos.Article.GetVisible(articleID, blogID, userCtx.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect(fmt.Sprintf("/reader/blog/%d", blogID), fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	comments, err := repos.Comment.ListByArticle(article.ID)
	if err != nil {
		return renderServerError(c, err)
	}
	commentRows := make([]viewmodel.CommentRow, 0, len(comments))
	for _, comment := range comments {
		commentRows = append(commentRows, viewmodel.CommentRow{
			DisplayName: comment.User.DisplayName,
			Body:        comment.Body,
			DateCreated: htmltext.LocalDisplayTime(comment.CreatedAt),
		})
	}

	hasLiked := false
	if userCtx.IsLoggedIn {
		hasLiked, err = repos.Like.HasLiked(userCtx.UserID, article.ID)
		if err != nil {
			return renderServerError(c, err)
		}
	}

	return c.Render("reader/article", fiber.Map{
		"Layout":       layoutFor(c, article.Title, flash.Get(c)),
		"CSRFToken":    csrfToken(c),
		"BlogID":       blogID,
		"BlogTitle":    article.Blog.Title,
		"DisplayName":  article.Blog.User.DisplayName,
		"ArticleID":    article.ID,
		"Title":        article.Title,
		"Subtitle":     article.Subtitle,
		"Category":     article.Category,
		"BodyHTML":     template.HTML(htmltext.DecorateArticleHTML(article.Body)),
		"Views":        article.Views,
		"Likes":        article.Likes,
		"HasLiked":     hasLiked,
		"DateCreated":  htmltext.LocalDisplayTime(article.CreatedAt),
		"DateModified": htmltext.LocalDisplayTime(article.UpdatedAt),
		"Comments":     commentRows,
	}, "layouts/main")
}

// HandleReaderArticleLikes lists the users who liked an article, newest first
func HandleReaderArticleLikes(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()
	userCtx := usercontext.GetUserContext(c)

	blogID := paramID(c, "blogId")
	articleID := paramID(c, "articleId")
	if blogID == 0 || articleID == 0 {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	}

	article, err := repos.Article.GetVisible(articleID, blogID, userCtx.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect(fmt.Sprintf("/reader/blog/%d", blogID), fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	likes, err := repos.Like.ListByArticle(article.ID)
	if err != nil {
		return renderServerError(c, err)
	}
	likeRows := make([]viewmodel.LikeRow, 0, len(likes))
	for _, like := range likes {
		likeRows = append(likeRows, viewmodel.LikeRow{
			DisplayName: like.User.DisplayName,
			DateCreated: htmltext.LocalDisplayTime(like.CreatedAt),
		})
	}

	return c.Render("reader/likes", fiber.Map{
		"Layout":    layoutFor(c, "Article Likes", flash.Get(c)),
		"BlogID":    blogID,
		"ArticleID": article.ID,
		"Title":     article.Title,
		"LikeRows":  likeRows,
	}, "layouts/main")
}
