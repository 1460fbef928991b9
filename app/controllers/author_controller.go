package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/app/repository"
	"github.com/featherpress/featherpress/internal/pkg/session"
	"github.com/featherpress/featherpress/internal/pkg/statistics"
	"github.com/featherpress/featherpress/internal/pkg/usercontext"
)

// HandleAuthorHome renders the author dashboard with the blog's articles
// grouped by lifecycle state
func HandleAuthorHome(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	articleRepo := repository.GetGlobalRepositories().Article

	drafts, err := articleRepo.ListByCategory(userCtx.BlogID, models.CategoryDraft)
	if err != nil {
		return renderServerError(c, err)
	}
	published, err := articleRepo.ListByCategory(userCtx.BlogID, models.CategoryPublished)
	if err != nil {
		return renderServerError(c, err)
	}
	deleted, err := articleRepo.ListByCategory(userCtx.BlogID, models.CategoryDeleted)
	if err != nil {
		return renderServerError(c, err)
	}

	return c.Render("author/home", fiber.Map{
		"Layout":    layoutFor(c, "Home (author)", flash.Get(c)),
		"CSRFToken": csrfToken(c),
		"BlogTitle": userCtx.BlogTitle,
		"Drafts":    articleRows(drafts),
		"Published": articleRows(published),
		"Deleted":   articleRows(deleted),
	}, "layouts/main")
}

// lifecycle transitions reachable from the dashboard action buttons
var actionTransitions = map[string]string{
	"publish":   models.CategoryPublished,
	"unpublish": models.CategoryDraft,
	"delete":    models.CategoryDeleted,
	"recover":   models.CategoryDraft,
}

// HandleAuthorAction dispatches the dashboard's lifecycle actions. Every
// mutation is scoped to the caller's blog; an article that is missing or
// owned by someone else just bounces back to the dashboard.
func HandleAuthorAction(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	articleRepo := repository.GetGlobalRepositories().Article

	articleID := paramFormID(c, "article_id")
	if articleID == 0 {
		return c.Redirect("/author", fiber.StatusSeeOther)
	}

	action := c.FormValue("action")

	var err error
	if category, ok := actionTransitions[action]; ok {
		err = articleRepo.SetCategory(articleID, userCtx.BlogID, category)
	} else if action == "delete-permanently" {
		err = articleRepo.PermanentDelete(articleID, userCtx.BlogID)
	} else {
		fm := fiber.Map{
			"type":    "error",
			"message": "Unknown action",
		}
		return flash.WithError(c, fm).Redirect("/author")
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect("/author", fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	// published-article count likely changed
	statistics.ResetCacheUpdateTimer()

	return c.Redirect("/author", fiber.StatusSeeOther)
}

// HandleAuthorSettings renders and updates the blog title and author display
// name. Validation failures re-render the form with the submitted values.
func HandleAuthorSettings(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	repos := repository.GetGlobalRepositories()

	if c.Method() == fiber.MethodPost {
		blogTitle := c.FormValue("blog_title")
		displayName := c.FormValue("display_name")

		var formErrors []string
		if blogTitle == "" {
			formErrors = append(formErrors, "Title must have at least 1 character")
		}
		if displayName == "" {
			formErrors = append(formErrors, "Name must have at least 1 character")
		}

		if len(formErrors) > 0 {
			return c.Render("author/settings", fiber.Map{
				"Layout":      layoutFor(c, "Settings", nil),
				"CSRFToken":   csrfToken(c),
				"BlogTitle":   blogTitle,
				"DisplayName": displayName,
				"FormErrors":  formErrors,
			}, "layouts/main")
		}

		blog, err := repos.Blog.GetByUserID(userCtx.UserID)
		if err != nil {
			return renderServerError(c, err)
		}
		blog.Title = blogTitle
		if err := repos.Blog.Update(blog); err != nil {
			return renderServerError(c, err)
		}

		user, err := repos.User.GetByID(userCtx.UserID)
		if err != nil {
			return renderServerError(c, err)
		}
		user.DisplayName = displayName
		if err := repos.User.Update(user); err != nil {
			return renderServerError(c, err)
		}

		// keep the session's display name in step
		session.SetSessionValue(c, usercontext.KeyDisplayName, displayName)

		return c.Redirect("/author", fiber.StatusSeeOther)
	}

	return c.Render("author/settings", fiber.Map{
		"Layout":      layoutFor(c, "Settings", flash.Get(c)),
		"CSRFToken":   csrfToken(c),
		"BlogTitle":   userCtx.BlogTitle,
		"DisplayName": userCtx.DisplayName,
	}, "layouts/main")
}

// HandleCreateBlog renders and processes first-time blog creation. Guarded by
// RequireNoBlog, so a second blog can never be created through this route.
func HandleCreateBlog(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if c.Method() == fiber.MethodPost {
		title := c.FormValue("blog_title")

		if title == "" {
			return c.Render("author/create-blog", fiber.Map{
				"Layout":     layoutFor(c, "Create your blog", nil),
				"CSRFToken":  csrfToken(c),
				"FormErrors": []string{"Title must have at least 1 character"},
			}, "layouts/main")
		}

		blog := &models.Blog{
			Title:  title,
			UserID: userCtx.UserID,
		}
		if err := repository.GetGlobalRepositories().Blog.Create(blog); err != nil {
			return renderServerError(c, err)
		}

		go statistics.UpdateStatisticsCache()

		fm := fiber.Map{
			"type":    "success",
			"message": "Your blog is ready!",
		}
		return flash.WithSuccess(c, fm).Redirect("/author")
	}

	return c.Render("author/create-blog", fiber.Map{
		"Layout":    layoutFor(c, "Create your blog", flash.Get(c)),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}
