package dtos

import "github.com/workhive/workhive-backend/internal/models"

type JobSeekerPostRequest struct {
	JobTitle        string   `json:"job_title" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level" binding:"required"`
	EducationLevel  string   `json:"education_level" binding:"required"`
}

type JobSeekerPostUpdate struct {
	JobTitle        string   `json:"job_title"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	EducationLevel  string   `json:"education_level"`
}

type HireRequest struct {
	JobSeekerPostID uint `json:"jobSeekerPostId" binding:"required"`
	HiredUserID     uint `json:"hiredUserId" binding:"required"`
	EmployerID      uint `json:"employerId" binding:"required"`
}

// HireResponse reports the toggled hiring record plus the employer's
// mirrored hiredJobPosts view.
type HireResponse struct {
	Message       string            `json:"message"`
	Hired         bool              `json:"hired"`
	HiringJob     *models.JobHiring `json:"hiringJob"`
	HiredJobPosts []uint            `json:"hiredJobPosts"`
}

type SeekerPostWithUser struct {
	models.JobSeekerPost
	User *models.User `json:"user_profile,omitempty"`
}

type SeekerPostListResponse struct {
	Posts       []SeekerPostWithUser `json:"posts"`
	TotalItems  int64                `json:"totalItems"`
	TotalPages  int                  `json:"totalPages"`
	CurrentPage int                  `json:"currentPage"`
	HasNextPage bool                 `json:"hasNextPage"`
	HasPrevPage bool                 `json:"hasPrevPage"`
}

type HiringDetail struct {
	HiredUser string `json:"hiredUser"`
	Employer  string `json:"employer"`
	JobTitle  string `json:"jobTitle"`
}
