package services

import (
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/models"
	"gorm.io/gorm"
)

// SearchService runs the global cross-entity search: one pattern matched
// case-insensitively against each entity's text columns.
type SearchService struct {
	DB      *gorm.DB
	Seekers *JobSeekerService
}

func NewSearchService(db *gorm.DB, seekers *JobSeekerService) *SearchService {
	return &SearchService{DB: db, Seekers: seekers}
}

func (s *SearchService) Global(query string) (*dtos.SearchResponse, error) {
	pattern := "%" + lower(query) + "%"

	var blogs []models.Blog
	if err := s.DB.
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
		Find(&blogs).Error; err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := s.DB.
		Where("LOWER(job_title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(job_type) LIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&jobs).Error; err != nil {
		return nil, err
	}

	var posts []models.JobSeekerPost
	if err := s.DB.
		Where("LOWER(job_title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(skills) LIKE ?",
			pattern, pattern, pattern).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	postsWithUsers, err := s.Seekers.attachUsers(posts)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := s.DB.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ? OR LOWER(company_name) LIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&events).Error; err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.DB.
		Where("LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return &dtos.SearchResponse{
		Blogs:          blogs,
		Jobs:           jobs,
		JobSeekerPosts: postsWithUsers,
		Events:         events,
		Users:          users,
	}, nil
}
