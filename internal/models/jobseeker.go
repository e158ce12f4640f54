package models

import (
	"time"
)

type JobSeekerPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID          uint     `gorm:"index;not null" json:"user"`
	JobTitle        string   `gorm:"not null" json:"job_title"`
	Location        string   `gorm:"not null" json:"location"`
	Description     string   `gorm:"type:text;not null" json:"description"`
	Skills          []string `gorm:"serializer:json" json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	EducationLevel  string   `json:"education_level"`
}

// JobHiring is a ternary relation: a row for the exact
// (post, hired user, employer) triple means "currently hired", absence
// means not hired. The hire endpoint toggles the row; this is not an
// audit log.
type JobHiring struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"hired_at"`

	JobSeekerPostID uint `gorm:"index;uniqueIndex:idx_hiring_triple;not null" json:"job_seeker_post"`
	HiredUserID     uint `gorm:"index;uniqueIndex:idx_hiring_triple;not null" json:"hired_user"`
	EmployerID      uint `gorm:"index;uniqueIndex:idx_hiring_triple;not null" json:"employer"`
}
