package models

import (
	"time"
)

// Image is a media-store reference. Entities never hold binary content,
// only the (url, publicId) pair returned by the uploader.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Project is an embedded portfolio entry on a user profile.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`

	Bio          string `json:"bio"`
	Gender       string `json:"gender"`
	JobTitle     string `json:"job_title"`
	Location     string `json:"location"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`

	ProfilePhoto Image `gorm:"embedded;embeddedPrefix:photo_" json:"profile_photo"`

	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Twitter  string `json:"twitter"`

	Skills         []string  `gorm:"serializer:json" json:"skills"`
	Experience     []string  `gorm:"serializer:json" json:"experience"`
	Education      []string  `gorm:"serializer:json" json:"education"`
	Projects       []Project `gorm:"serializer:json" json:"projects"`
	Certifications []string  `gorm:"serializer:json" json:"certifications"`
	Languages      []string  `gorm:"serializer:json" json:"languages"`
	Interests      []string  `gorm:"serializer:json" json:"interests"`

	// Set when a message arrives, cleared when the user marks messages read.
	HasNewMessage bool `gorm:"default:false" json:"has_new_message"`
}
