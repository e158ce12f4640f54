package models

import (
	"time"
)

type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"timestamp"`

	SenderID   uint   `gorm:"index;not null" json:"sender"`
	ReceiverID uint   `gorm:"index;not null" json:"receiver"`
	Body       string `gorm:"type:text;not null" json:"message"`
	IsRead     bool   `gorm:"default:false" json:"is_read"`
}
