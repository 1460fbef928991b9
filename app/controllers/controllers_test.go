package controllers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/app/repository"
	"github.com/featherpress/featherpress/internal/pkg/database"
	"github.com/featherpress/featherpress/internal/pkg/middleware"
)

// newTestApp builds the full application against an isolated in-memory
// database. The CSRF middleware is left out so tests can post forms without
// scraping tokens; the handlers under test never read the token themselves.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Article{},
		&models.Comment{},
		&models.Like{},
	))

	database.DB = db
	repository.InitializeFactory(db)

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(middleware.UserContextMiddleware)

	app.Get("/", HandleStart)
	app.Get("/login", HandleAuthLogin)
	app.Post("/login", HandleAuthLogin)
	app.Get("/logout", middleware.RequireAuth, HandleAuthLogout)
	app.Get("/sign-up", HandleAuthRegister)
	app.Post("/sign-up", HandleAuthRegister)

	app.Get("/author", middleware.RequireAuth, middleware.RequireBlog, HandleAuthorHome)
	app.Post("/author", middleware.RequireAuth, middleware.RequireBlog, HandleAuthorAction)
	app.Get("/author/article", middleware.RequireAuth, middleware.RequireBlog, HandleArticleCreate)
	app.Post("/author/article", middleware.RequireAuth, middleware.RequireBlog, HandleArticleCreate)
	app.Get("/author/article/:id", middleware.RequireAuth, middleware.RequireBlog, HandleArticleEdit)
	app.Post("/author/article/:id", middleware.RequireAuth, middleware.RequireBlog, HandleArticleEdit)
	app.Get("/author/settings", middleware.RequireAuth, middleware.RequireBlog, HandleAuthorSettings)
	app.Post("/author/settings", middleware.RequireAuth, middleware.RequireBlog, HandleAuthorSettings)
	app.Get("/author/create-blog", middleware.RequireAuth, middleware.RequireNoBlog, HandleCreateBlog)
	app.Post("/author/create-blog", middleware.RequireAuth, middleware.RequireNoBlog, HandleCreateBlog)

	app.Get("/reader", HandleReaderHome)
	app.Get("/reader/blog/:blogId", HandleReaderBlog)
	app.Get("/reader/blog/:blogId/article/:articleId", HandleReaderArticle)
	app.Get("/reader/blog/:blogId/article/:articleId/likes", HandleReaderArticleLikes)
	app.Post("/reader/blog/:blogId/article/:articleId/comment", middleware.RequireAuth, HandleComment)
	app.Post("/reader/blog/:blogId/article/:articleId/like", middleware.RequireAuth, HandleLike)
	app.Post("/reader/blog/:blogId/article/:articleId/unlike", middleware.RequireAuth, HandleUnlike)

	return app
}

// testClient carries cookies across requests, like a browser would
type testClient struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newTestClient(t *testing.T, app *fiber.App) *testClient {
	return &testClient{t: t, app: app, cookies: map[string]string{}}
}

func (c *testClient) do(method, target string, form url.Values) *http.Response {
	c.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)

	for _, ck := range resp.Cookies() {
		if ck.Value == "" {
			delete(c.cookies, ck.Name)
		} else {
			c.cookies[ck.Name] = ck.Value
		}
	}

	return resp
}

func (c *testClient) get(target string) *http.Response {
	return c.do(fiber.MethodGet, target, nil)
}

func (c *testClient) postForm(target string, form url.Values) *http.Response {
	return c.do(fiber.MethodPost, target, form)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return string(b)
}

func assertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()

	require.GreaterOrEqual(t, resp.StatusCode, 300, "expected a redirect")
	require.Less(t, resp.StatusCode, 400, "expected a redirect")
	assert.Equal(t, location, resp.Header.Get("Location"))
}

// signUpAndLogin walks a fresh client through registration and login
func signUpAndLogin(t *testing.T, client *testClient, username string) {
	t.Helper()

	resp := client.postForm("/sign-up", url.Values{
		"username":     {username},
		"display_name": {username},
		"password":     {"secret123"},
	})
	assertRedirect(t, resp, "/login")

	resp = client.postForm("/login", url.Values{
		"username": {username},
		"password": {"secret123"},
	})
	assertRedirect(t, resp, "/author")
}

func createBlog(t *testing.T, client *testClient, title string) {
	t.Helper()

	resp := client.postForm("/author/create-blog", url.Values{"blog_title": {title}})
	assertRedirect(t, resp, "/author")
}
