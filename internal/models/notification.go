package models

import (
	"time"
)

// Notification types emitted by the relationship maintainer.
const (
	NotificationJobSaved       = "job_saved"
	NotificationJobApplication = "job_application"
	NotificationHired          = "hired"
	NotificationUnhired        = "unhired"
)

// Notification is addressed to one recipient and carries exactly one
// related-entity reference: JobID for job actions, JobSeekerPostID for
// hiring actions. Validate enforces the exactly-one rule.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"timestamp"`

	Type       string `gorm:"size:30" json:"type"`
	ToUserID   uint   `gorm:"index;not null" json:"to_user"`
	FromUserID uint   `gorm:"index;not null" json:"from_user"`
	Message    string `gorm:"not null" json:"message"`
	Read       bool   `gorm:"default:false;index" json:"read"`

	JobID           *uint `json:"job,omitempty"`
	JobSeekerPostID *uint `json:"job_hired,omitempty"`
}

// Validate reports whether exactly one of the two related references is set.
func (n *Notification) Validate() bool {
	return (n.JobID != nil) != (n.JobSeekerPostID != nil)
}
