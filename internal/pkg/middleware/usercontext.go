package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/repository"
	"github.com/featherpress/featherpress/internal/pkg/session"
	"github.com/featherpress/featherpress/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session into a complete user context for
// every request: identity, and the user's blog when one exists. Handlers and
// guards read the result via usercontext.GetUserContext and never touch the
// session themselves.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		usercontext.SetUserContext(c, usercontext.UserContext{IsLoggedIn: false})
		return c.Next()
	}

	userID := sess.Get(usercontext.KeyUserID)
	if userID == nil {
		usercontext.SetUserContext(c, usercontext.UserContext{IsLoggedIn: false})
		return c.Next()
	}

	userCtx := usercontext.UserContext{
		UserID:      userID.(uint),
		Username:    session.GetSessionValue(c, usercontext.KeyUsername),
		DisplayName: session.GetSessionValue(c, usercontext.KeyDisplayName),
		IsLoggedIn:  true,
	}

	blog, err := repository.GetGlobalRepositories().Blog.GetByUserID(userCtx.UserID)
	if err == nil {
		userCtx.HasBlog = true
		userCtx.BlogID = blog.ID
		userCtx.BlogTitle = blog.Title
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve blog")
	}

	usercontext.SetUserContext(c, userCtx)

	return c.Next()
}
