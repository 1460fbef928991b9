package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/internal/pkg/htmltext"
	"github.com/featherpress/featherpress/internal/pkg/usercontext"
	"github.com/featherpress/featherpress/internal/pkg/viewmodel"
)

// layoutFor builds the shared layout fields from the request's user context
func layoutFor(c *fiber.Ctx, page string, msg fiber.Map) viewmodel.Layout {
	userCtx := usercontext.GetUserContext(c)
	return viewmodel.Layout{
		Page:        page,
		IsLoggedIn:  userCtx.IsLoggedIn,
		HasBlog:     userCtx.HasBlog,
		Username:    userCtx.Username,
		DisplayName: userCtx.DisplayName,
		Msg:         msg,
	}
}

// csrfToken returns the token the CSRF middleware stored for this request
func csrfToken(c *fiber.Ctx) string {
	if token, ok := c.Locals("csrf").(string); ok {
		return token
	}
	return ""
}

// paramID parses a numeric URL parameter; 0 means absent or malformed
func paramID(c *fiber.Ctx, name string) uint {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// paramFormID parses a numeric form field; 0 means absent or malformed
func paramFormID(c *fiber.Ctx, name string) uint {
	id, err := strconv.ParseUint(c.FormValue(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// articleRow converts an article to its display representation, recomputing
// the preview from the authoritative HTML body
func articleRow(a models.Article) viewmodel.ArticleRow {
	return viewmodel.ArticleRow{
		ID:           a.ID,
		Title:        a.Title,
		Subtitle:     a.Subtitle,
		Views:        a.Views,
		Likes:        a.Likes,
		Preview:      htmltext.PlainPreview(a.Body, htmltext.PreviewLimit),
		DateCreated:  htmltext.LocalDisplayTime(a.CreatedAt),
		DateModified: htmltext.LocalDisplayTime(a.UpdatedAt),
	}
}

func articleRows(articles []models.Article) []viewmodel.ArticleRow {
	rows := make([]viewmodel.ArticleRow, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, articleRow(a))
	}
	return rows
}

// renderServerError handles persistence failures: log the raw error together
// with a correlation id an operator can search for, and show the error page.
// Never retried.
func renderServerError(c *fiber.Ctx, err error) error {
	correlationID := uuid.NewString()
	log.Printf("[%s] request %s %s failed: %v", correlationID, c.Method(), c.Path(), err)

	return c.Status(fiber.StatusInternalServerError).Render("error", fiber.Map{
		"Layout":        layoutFor(c, "Something went wrong", nil),
		"CorrelationID": correlationID,
		"Detail":        err.Error(),
	}, "layouts/main")
}
