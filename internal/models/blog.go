package models

import (
	"time"
)

type Blog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	AuthorID uint   `gorm:"index" json:"author"`
	Image    Image  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
}
