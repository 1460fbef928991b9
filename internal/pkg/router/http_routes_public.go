package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/featherpress/featherpress/app/controllers"
	"github.com/featherpress/featherpress/internal/pkg/middleware"
)

// Routes without forms: nothing here needs a CSRF token.
func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/logout", middleware.RequireAuth, controllers.HandleAuthLogout)

	app.Get("/reader", controllers.HandleReaderHome)
	app.Get("/reader/blog", func(c *fiber.Ctx) error {
		return c.Redirect("/reader", fiber.StatusSeeOther)
	})
	app.Get("/reader/blog/:blogId/article/:articleId/likes", controllers.HandleReaderArticleLikes)
}
