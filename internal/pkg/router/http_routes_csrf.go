package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"

	"github.com/featherpress/featherpress/app/controllers"
	"github.com/featherpress/featherpress/internal/pkg/env"
	"github.com/featherpress/featherpress/internal/pkg/middleware"
)

// Every route that renders or accepts a form lives in this group so the
// templates always have a CSRF token at hand.
func (h HttpRouter) registerCSRFProtectedRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))

	group.Get("/", controllers.HandleStart)
	group.Get("/login", controllers.HandleAuthLogin)
	group.Post("/login", controllers.HandleAuthLogin)
	group.Get("/sign-up", controllers.HandleAuthRegister)
	group.Post("/sign-up", controllers.HandleAuthRegister)

	// Author dashboard and article lifecycle
	group.Get("/author", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleAuthorHome)
	group.Post("/author", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleAuthorAction)
	group.Get("/author/article", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleArticleCreate)
	group.Post("/author/article", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleArticleCreate)
	group.Get("/author/article/:id", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleArticleEdit)
	group.Post("/author/article/:id", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleArticleEdit)
	group.Get("/author/settings", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleAuthorSettings)
	group.Post("/author/settings", middleware.RequireAuth, middleware.RequireBlog, controllers.HandleAuthorSettings)
	group.Get("/author/create-blog", middleware.RequireAuth, middleware.RequireNoBlog, controllers.HandleCreateBlog)
	group.Post("/author/create-blog", middleware.RequireAuth, middleware.RequireNoBlog, controllers.HandleCreateBlog)

	// Reader browse + engagement forms
	group.Get("/reader/blog/:blogId", controllers.HandleReaderBlog)
	group.Get("/reader/blog/:blogId/article/:articleId", controllers.HandleReaderArticle)
	group.Post("/reader/blog/:blogId/article/:articleId/comment", middleware.RequireAuth, controllers.HandleComment)
	group.Post("/reader/blog/:blogId/article/:articleId/like", middleware.RequireAuth, controllers.HandleLike)
	group.Post("/reader/blog/:blogId/article/:articleId/unlike", middleware.RequireAuth, controllers.HandleUnlike)
}
