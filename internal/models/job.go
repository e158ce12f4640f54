package models

import (
	"time"
)

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobTitle string `gorm:"not null" json:"job_title"`

	CompanyName         string `json:"company_name"`
	CompanyLogo         Image  `gorm:"embedded;embeddedPrefix:logo_" json:"company_logo"`
	CompanyDescription  string `gorm:"type:text" json:"company_description"`
	CompanyContactEmail string `json:"company_contact_email"`

	Location         string   `json:"location"`
	SalaryMin        int      `json:"salary_min"`
	SalaryMax        int      `json:"salary_max"`
	ExperienceLevel  string   `json:"experience_level"`
	EmploymentType   string   `json:"employment_type"`
	EducationLevel   string   `json:"education_level"`
	JobType          string   `json:"job_type"`
	Requirements     []string `gorm:"serializer:json" json:"requirements"`
	Responsibilities []string `gorm:"serializer:json" json:"responsibilities"`

	Views      int  `gorm:"default:0" json:"views"`
	PostedByID uint `gorm:"index" json:"posted_by"`
}

// SavedJob is the relationship record behind the original's mirrored
// user.savedJobs / job.savedByUsers arrays. Row present means saved;
// the composite unique index makes the toggle race-free inside a
// transaction and gives each side its own lookup path.
type SavedJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_saved_user_job" json:"user_id"`
	JobID     uint      `gorm:"index;uniqueIndex:idx_saved_user_job" json:"job_id"`
	CreatedAt time.Time `json:"created_at"`
}

// JobView records a unique viewer of a job; Job.Views keeps the raw count.
type JobView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JobID     uint      `gorm:"index;uniqueIndex:idx_view_job_user" json:"job_id"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_view_job_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// JobApplication: one per (job, applicant) pair, enforced at write time
// inside the apply transaction and backed by the composite unique index.
type JobApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID       uint   `gorm:"index;uniqueIndex:idx_application_job_user" json:"job"`
	ApplicantID uint   `gorm:"index;uniqueIndex:idx_application_job_user" json:"applicant"`
	Resume      string `gorm:"not null" json:"resume"`
	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	Status      string `gorm:"default:'pending'" json:"status"`
}
