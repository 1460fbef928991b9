package models

import (
	"time"
)

// Comment is append-only; comments are never edited or deleted except when
// their article is permanently removed.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"index" json:"article_id"`
	Article   Article   `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Body      string    `gorm:"type:text" json:"body" validate:"required,min=1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
