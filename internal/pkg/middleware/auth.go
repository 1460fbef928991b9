package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/featherpress/featherpress/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session; redirects to /login if missing.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireBlog ensures the logged-in user owns a blog; redirects to blog
// creation otherwise. The resolved blog is already part of the user context.
func RequireBlog(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if !userCtx.HasBlog {
		return c.Redirect("/author/create-blog", fiber.StatusSeeOther)
	}
	return c.Next()
}

// RequireNoBlog gates blog creation: users who already own a blog are sent
// back to the author dashboard.
func RequireNoBlog(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if userCtx.HasBlog {
		return c.Redirect("/author", fiber.StatusSeeOther)
	}
	return c.Next()
}
