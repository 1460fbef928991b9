package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout carries the fields every page template needs
type Layout struct {
	Page        string
	IsLoggedIn  bool
	HasBlog     bool
	Username    string
	DisplayName string
	Msg         fiber.Map
}

// ArticleRow is a display-ready article line for dashboard and list views
type ArticleRow struct {
	ID           uint
	Title        string
	Subtitle     string
	Views        int
	Likes        int
	Preview      string
	DateCreated  string
	DateModified string
}

// CommentRow is a display-ready comment for the article view
type CommentRow struct {
	DisplayName string
	Body        string
	DateCreated string
}

// LikeRow is a display-ready like for the likes page
type LikeRow struct {
	DisplayName string
	DateCreated string
}
