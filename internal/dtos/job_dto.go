package dtos

import "github.com/workhive/workhive-backend/internal/models"

type JobCreationRequest struct {
	JobTitle            string `form:"job_title" json:"job_title" binding:"required"`
	CompanyName         string `form:"company_name" json:"company_name"`
	CompanyDescription  string `form:"company_description" json:"company_description"`
	CompanyContactEmail string `form:"company_contact_email" json:"company_contact_email"`
	Location            string `form:"location" json:"location"`
	SalaryMin           int    `form:"salary_min" json:"salary_min"`
	SalaryMax           int    `form:"salary_max" json:"salary_max"`
	ExperienceLevel     string `form:"experience_level" json:"experience_level"`
	EmploymentType      string `form:"employment_type" json:"employment_type"`
	EducationLevel      string `form:"education_level" json:"education_level"`
	JobType             string `form:"job_type" json:"job_type"`

	Requirements     []string `form:"requirements" json:"requirements"`
	Responsibilities []string `form:"responsibilities" json:"responsibilities"`
}

// JobFilter mirrors the original's query-string filters; empty fields
// are skipped when building the WHERE clause.
type JobFilter struct {
	JobTitle        string `form:"jobTitle"`
	Location        string `form:"location"`
	JobType         string `form:"jobType"`
	ExperienceLevel string `form:"experienceLevel"`
	EmploymentType  string `form:"employmentType"`
	EducationLevel  string `form:"educationLevel"`
}

type JobListResponse struct {
	Jobs        []models.Job `json:"jobs"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	TotalJobs   int64        `json:"totalJobs"`
}

// SaveJobResponse returns the mirrored state so the caller can reconcile
// local state without a refetch.
type SaveJobResponse struct {
	Message   string `json:"message"`
	IsSaved   bool   `json:"isSaved"`
	SavedJobs []uint `json:"savedJobs"`
}

type ApplyRequest struct {
	CoverLetter string `form:"cover_letter" json:"cover_letter"`
	// ResumeLink is accepted when the resume is hosted elsewhere; a
	// multipart "resume" file takes precedence.
	ResumeLink string `form:"resume_link" json:"resume_link"`
}

type JobViewersResponse struct {
	Viewers   []models.User `json:"viewers"`
	ViewCount int           `json:"viewCount"`
}

type ApplicantsResponse struct {
	Applicants     []models.User `json:"applicants"`
	ApplicantCount int           `json:"applicantCount"`
}
