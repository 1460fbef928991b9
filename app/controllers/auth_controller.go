package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
	"gorm.io/gorm"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/app/repository"
	"github.com/featherpress/featherpress/internal/pkg/session"
	"github.com/featherpress/featherpress/internal/pkg/statistics"
	"github.com/featherpress/featherpress/internal/pkg/usercontext"
)

// HandleStart renders the public home page with login and sign-up entries
func HandleStart(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Layout": layoutFor(c, "FeatherPress", flash.Get(c)),
	}, "layouts/main")
}

// HandleAuthLogin renders the login form and processes submissions
func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		user, err := repository.GetGlobalRepositories().User.GetByUsername(c.FormValue("username"))
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return renderServerError(c, err)
			}
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !user.CheckPassword(c.FormValue("password")) {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess.Set(usercontext.AuthKey, true)
		sess.Set(usercontext.KeyUserID, user.ID)
		sess.Set(usercontext.KeyUsername, user.Username)
		sess.Set(usercontext.KeyDisplayName, user.DisplayName)

		if err = sess.Save(); err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		fm = fiber.Map{
			"type":    "success",
			"message": "Welcome back!",
		}

		return flash.WithSuccess(c, fm).Redirect("/author")
	}

	return c.Render("login", fiber.Map{
		"Layout":    layoutFor(c, "Log in", flash.Get(c)),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}

// HandleAuthLogout destroys the session
func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	if err = sess.Destroy(); err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Bye bye! See you soon.",
	}

	return flash.WithSuccess(c, fm).Redirect("/login")
}

// HandleAuthRegister renders the sign-up form and creates new accounts.
// Validation failures re-render the form with the submitted values preserved.
func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		username := c.FormValue("username")
		displayName := c.FormValue("display_name")
		password := c.FormValue("password")

		var formErrors []string
		if len(username) < 3 {
			formErrors = append(formErrors, "Username must have at least 3 characters")
		}
		if displayName == "" {
			formErrors = append(formErrors, "Display name must have at least 1 character")
		}
		if len(password) < 6 {
			formErrors = append(formErrors, "Password must have at least 6 characters")
		}

		var user *models.User
		if len(formErrors) == 0 {
			var err error
			user, err = models.CreateUser(username, displayName, password)
			if err != nil {
				formErrors = append(formErrors, fmt.Sprintf("invalid input: %s", err))
			}
		}

		if len(formErrors) == 0 {
			err := repository.GetGlobalRepositories().User.Create(user)
			if errors.Is(err, repository.ErrDuplicateUsername) {
				formErrors = append(formErrors, "This username is already taken")
			} else if err != nil {
				return renderServerError(c, err)
			}
		}

		if len(formErrors) > 0 {
			return c.Render("sign-up", fiber.Map{
				"Layout":      layoutFor(c, "Sign up", nil),
				"CSRFToken":   csrfToken(c),
				"FormErrors":  formErrors,
				"Username":    username,
				"DisplayName": displayName,
			}, "layouts/main")
		}

		go statistics.UpdateStatisticsCache()

		fm := fiber.Map{
			"type":    "success",
			"message": "Account created, you can log in now!",
		}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return c.Render("sign-up", fiber.Map{
		"Layout":    layoutFor(c, "Sign up", flash.Get(c)),
		"CSRFToken": csrfToken(c),
	}, "layouts/main")
}
