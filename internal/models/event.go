package models

import (
	"time"
)

type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `gorm:"not null" json:"location"`
	CompanyName string    `json:"company_name"`
	CompanyLogo Image     `gorm:"embedded;embeddedPrefix:logo_" json:"company_logo"`
}

// EventInterest is single-sided on purpose: the original indexes interest
// only on the user, never on the event itself.
type EventInterest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_interest_user_event" json:"user_id"`
	EventID   uint      `gorm:"uniqueIndex:idx_interest_user_event" json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}
