package dtos

import "github.com/workhive/workhive-backend/internal/models"

type BlogRequest struct {
	Title   string `form:"title" json:"title" binding:"required"`
	Content string `form:"content" json:"content" binding:"required"`
}

type BlogUpdate struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type BlogListResponse struct {
	Blogs      []models.Blog `json:"blogs"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// SearchResponse groups global search hits per entity, mirroring the
// original's response shape.
type SearchResponse struct {
	Blogs          []models.Blog        `json:"blogs"`
	Jobs           []models.Job         `json:"jobs"`
	JobSeekerPosts []SeekerPostWithUser `json:"jobSeekerPosts"`
	Events         []models.Event       `json:"events"`
	Users          []models.User        `json:"users"`
}
