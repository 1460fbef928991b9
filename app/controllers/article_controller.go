package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/app/repository"
	"github.com/featherpress/featherpress/internal/pkg/htmltext"
	"github.com/featherpress/featherpress/internal/pkg/statistics"
	"github.com/featherpress/featherpress/internal/pkg/usercontext"
)

// articleForm holds the submitted article fields for validation and re-render
type articleForm struct {
	Category string
	Title    string
	Subtitle string
	Body     string
}

func readArticleForm(c *fiber.Ctx) articleForm {
	form := articleForm{
		Category: c.FormValue("category", models.CategoryDraft),
		Title:    c.FormValue("title"),
		Subtitle: c.FormValue("subtitle"),
		Body:     c.FormValue("body"),
	}
	if !models.ValidCategory(form.Category) || form.Category == models.CategoryDeleted {
		form.Category = models.CategoryDraft
	}
	return form
}

func (f articleForm) validate() []string {
	var formErrors []string
	if f.Title == "" {
		formErrors = append(formErrors, "Title must have at least 1 character")
	}
	if f.Body == "" {
		formErrors = append(formErrors, "Body must have at least 1 character")
	}
	return formErrors
}

func renderArticleForm(c *fiber.Ctx, page string, articleID uint, form articleForm, formErrors []string) error {
	return c.Render("author/article-form", fiber.Map{
		"Layout":     layoutFor(c, page, flash.Get(c)),
		"CSRFToken":  csrfToken(c),
		"ArticleID":  articleID,
		"Category":   form.Category,
		"Title":      form.Title,
		"Subtitle":   form.Subtitle,
		"Body":       form.Body,
		"FormErrors": formErrors,
	}, "layouts/main")
}

// HandleArticleCreate renders the empty article form and stores submissions
// as a new article, drafted or published straight away per the form's choice.
func HandleArticleCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	if c.Method() == fiber.MethodPost {
		form := readArticleForm(c)
		if formErrors := form.validate(); len(formErrors) > 0 {
			return renderArticleForm(c, "Create New Article", 0, form, formErrors)
		}

		article := &models.Article{
			BlogID:    userCtx.BlogID,
			Category:  form.Category,
			Title:     form.Title,
			Subtitle:  form.Subtitle,
			Body:      form.Body,
			BodyPlain: htmltext.PlainPreview(form.Body, htmltext.PreviewLimit),
		}
		if err := repository.GetGlobalRepositories().Article.Create(article); err != nil {
			return renderServerError(c, err)
		}

		statistics.ResetCacheUpdateTimer()

		return c.Redirect("/author", fiber.StatusSeeOther)
	}

	return renderArticleForm(c, "Create New Article", 0, articleForm{Category: models.CategoryDraft}, nil)
}

// HandleArticleEdit renders the pre-filled form for an owned draft article
// and stores submitted changes. Published and deleted articles cannot be
// edited in place; they must first be moved back to draft.
func HandleArticleEdit(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	articleRepo := repository.GetGlobalRepositories().Article

	articleID := paramID(c, "id")
	if articleID == 0 {
		return c.Redirect("/author", fiber.StatusSeeOther)
	}

	article, err := articleRepo.GetOwned(articleID, userCtx.BlogID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Redirect("/author", fiber.StatusSeeOther)
	}
	if err != nil {
		return renderServerError(c, err)
	}

	if !article.CanEdit() {
		fm := fiber.Map{
			"type":    "error",
			"message": "Only draft articles can be edited. Unpublish or recover it first.",
		}
		return flash.WithError(c, fm).Redirect("/author")
	}

	if c.Method() == fiber.MethodPost {
		form := readArticleForm(c)
		if formErrors := form.validate(); len(formErrors) > 0 {
			return renderArticleForm(c, "Edit Draft Article", article.ID, form, formErrors)
		}

		article.Category = form.Category
		article.Title = form.Title
		article.Subtitle = form.Subtitle
		article.Body = form.Body
		article.BodyPlain = htmltext.PlainPreview(form.Body, htmltext.PreviewLimit)

		if err := articleRepo.Update(article); err != nil {
			return renderServerError(c, err)
		}

		statistics.ResetCacheUpdateTimer()

		return c.Redirect("/author", fiber.StatusSeeOther)
	}

	form := articleForm{
		Category: article.Category,
		Title:    article.Title,
		Subtitle: article.Subtitle,
		Body:     article.Body,
	}
	return renderArticleForm(c, "Edit Draft Article", article.ID, form, nil)
}
