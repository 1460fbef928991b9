package controllers

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featherpress/featherpress/app/models"
	"github.com/featherpress/featherpress/app/repository"
)

// publishArticle creates a published article through the author flow and
// returns its id together with the blog id
func publishArticle(t *testing.T, author *testClient, username string) (blogID, articleID uint) {
	t.Helper()

	resp := author.postForm("/author/article", url.Values{
		"category": {"published"},
		"title":    {"A public article"},
		"body":     {"<p>Read me</p>"},
	})
	assertRedirect(t, resp, "/author")

	blog := lookupBlog(t, username)
	published, err := repository.GetGlobalRepositories().Article.ListPublished(blog.ID)
	require.NoError(t, err)
	require.Len(t, published, 1)

	return blog.ID, published[0].ID
}

func TestCommentFlow(t *testing.T) {
	app := newTestApp(t)

	author := newTestClient(t, app)
	signUpAndLogin(t, author, "alice")
	createBlog(t, author, "Tales of Alice")
	blogID, articleID := publishArticle(t, author, "alice")

	articleURL := fmt.Sprintf("/reader/blog/%d/article/%d", blogID, articleID)

	// Readers do not need a blog of their own to comment
	reader := newTestClient(t, app)
	signUpAndLogin(t, reader, "bob")

	resp := reader.postForm(articleURL+"/comment", url.Values{"comment": {"Great read!"}})
	assertRedirect(t, resp, articleURL+"#comments")

	resp = reader.get(articleURL)
	require.Equal(t, 200, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Great read!")
	assert.Contains(t, body, "bob")

	// Empty comments are rejected without creating anything
	resp = reader.postForm(articleURL+"/comment", url.Values{"comment": {""}})
	assertRedirect(t, resp, articleURL+"#comments")

	comments, err := repository.GetGlobalRepositories().Comment.ListByArticle(articleID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestLikeFlow(t *testing.T) {
	app := newTestApp(t)

	author := newTestClient(t, app)
	signUpAndLogin(t, author, "alice")
	createBlog(t, author, "Tales of Alice")
	blogID, articleID := publishArticle(t, author, "alice")

	articleURL := fmt.Sprintf("/reader/blog/%d/article/%d", blogID, articleID)
	repos := repository.GetGlobalRepositories()

	reader := newTestClient(t, app)
	signUpAndLogin(t, reader, "bob")

	// Liking twice counts once
	resp := reader.postForm(articleURL+"/like", nil)
	assertRedirect(t, resp, articleURL)
	resp = reader.postForm(articleURL+"/like", nil)
	assertRedirect(t, resp, articleURL)

	article, err := repos.Article.GetByID(articleID)
	require.NoError(t, err)
	assert.Equal(t, 1, article.Likes)

	resp = reader.get(articleURL + "/likes")
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "bob")

	resp = reader.postForm(articleURL+"/unlike", nil)
	assertRedirect(t, resp, articleURL)

	article, err = repos.Article.GetByID(articleID)
	require.NoError(t, err)
	assert.Equal(t, 0, article.Likes)
}

func TestEngagementRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	author := newTestClient(t, app)
	signUpAndLogin(t, author, "alice")
	createBlog(t, author, "Tales of Alice")
	blogID, articleID := publishArticle(t, author, "alice")

	articleURL := fmt.Sprintf("/reader/blog/%d/article/%d", blogID, articleID)

	anon := newTestClient(t, app)
	for _, target := range []string{"/comment", "/like", "/unlike"} {
		resp := anon.postForm(articleURL+target, url.Values{"comment": {"x"}})
		assertRedirect(t, resp, "/login")
	}
}

func TestEngagementOnInvisibleArticle(t *testing.T) {
	app := newTestApp(t)

	author := newTestClient(t, app)
	signUpAndLogin(t, author, "alice")
	createBlog(t, author, "Tales of Alice")

	resp := author.postForm("/author/article", url.Values{
		"category": {"draft"},
		"title":    {"Hidden draft"},
		"body":     {"<p>Not yet</p>"},
	})
	assertRedirect(t, resp, "/author")

	blog := lookupBlog(t, "alice")
	repos := repository.GetGlobalRepositories()
	drafts, err := repos.Article.ListByCategory(blog.ID, models.CategoryDraft)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	articleURL := fmt.Sprintf("/reader/blog/%d/article/%d", blog.ID, drafts[0].ID)

	reader := newTestClient(t, app)
	signUpAndLogin(t, reader, "bob")

	resp = reader.postForm(articleURL+"/like", nil)
	assertRedirect(t, resp, "/reader")

	article, err := repos.Article.GetByID(drafts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 0, article.Likes)
}
