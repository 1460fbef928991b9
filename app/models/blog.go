package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Blog is a single author's namespace for articles, one per user account.
type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Blog) Validate() error {
	v := validator.New()

	return v.Struct(b)
}
