package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	CategoryDraft     = "draft"
	CategoryPublished = "published"
	CategoryDeleted   = "deleted"
)

// Article is a blog entry moving through the draft -> published -> deleted
// lifecycle. BodyPlain is a derived cache of the stripped and truncated Body,
// recomputed on every create and update; it is never authoritative on its own.
type Article struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"index" json:"blog_id"`
	Blog      Blog      `gorm:"foreignKey:BlogID" json:"blog,omitempty"`
	Category  string    `gorm:"type:varchar(20);default:'draft';index" json:"category" validate:"oneof=draft published deleted"`
	Title     string    `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Subtitle  string    `gorm:"type:varchar(255)" json:"subtitle" validate:"max=255"`
	Body      string    `gorm:"type:text" json:"body" validate:"required,min=1"`
	BodyPlain string    `gorm:"type:text" json:"body_plain"`
	Views     int       `gorm:"default:0" json:"views"`
	Likes     int       `gorm:"default:0" json:"likes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Article) Validate() error {
	v := validator.New()

	return v.Struct(a)
}

// CanEdit reports whether in-place editing is allowed. Published and deleted
// articles must first be moved back to draft.
func (a *Article) CanEdit() bool {
	return a.Category == CategoryDraft
}

// VisibleTo reports whether a requester may read the article: published
// articles are visible to everyone, drafts and deleted articles only to the
// owning blog's author.
func (a *Article) VisibleTo(viewerUserID uint) bool {
	if a.Category == CategoryPublished {
		return true
	}
	return viewerUserID != 0 && a.Blog.UserID == viewerUserID
}

// ValidCategory reports whether s is one of the known lifecycle states.
func ValidCategory(s string) bool {
	return s == CategoryDraft || s == CategoryPublished || s == CategoryDeleted
}
