package models

import (
	"time"
)

// Like records that a user liked an article. The composite unique index is
// the authoritative duplicate signal; the articles.likes counter is derived
// from these rows.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_likes_user_article" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ArticleID uint      `gorm:"uniqueIndex:idx_likes_user_article" json:"article_id"`
	Article   Article   `gorm:"foreignKey:ArticleID" json:"article,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
