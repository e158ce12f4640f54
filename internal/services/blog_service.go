package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/media"
	"github.com/workhive/workhive-backend/internal/models"
	"gorm.io/gorm"
)

type BlogService struct {
	DB       *gorm.DB
	Uploader media.Uploader
}

func NewBlogService(db *gorm.DB, uploader media.Uploader) *BlogService {
	return &BlogService{DB: db, Uploader: uploader}
}

func (s *BlogService) Create(authorID uint, req *dtos.BlogRequest, image *models.Image) (*models.Blog, error) {
	blog := models.Blog{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: authorID,
	}
	if image != nil {
		blog.Image = *image
	}
	if err := s.DB.Create(&blog).Error; err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) List(page, pageSize int) (*dtos.BlogListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	var total int64
	if err := s.DB.Model(&models.Blog{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var blogs []models.Blog
	if err := s.DB.Offset((page - 1) * pageSize).Limit(pageSize).Find(&blogs).Error; err != nil {
		return nil, err
	}

	return &dtos.BlogListResponse{
		Blogs:      blogs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}

func (s *BlogService) Get(id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := s.DB.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("blog")
		}
		return nil, err
	}
	return &blog, nil
}

func (s *BlogService) Update(id uint, req *dtos.BlogUpdate) (*models.Blog, error) {
	blog, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = req.Content
	}

	if err := s.DB.Save(blog).Error; err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Delete(id uint) error {
	res := s.DB.Delete(&models.Blog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("blog")
	}
	return nil
}

func (s *BlogService) UploadImage(ctx context.Context, id uint, stagedPath string) (*models.Image, error) {
	blog, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if blog.Image.PublicID != "" {
		if err := s.Uploader.Destroy(ctx, blog.Image.PublicID); err != nil {
			return nil, fmt.Errorf("remove previous image: %w", err)
		}
	}

	img, err := s.Uploader.Upload(ctx, stagedPath)
	if err != nil {
		return nil, err
	}

	blog.Image = img
	if err := s.DB.Save(blog).Error; err != nil {
		return nil, err
	}
	return &blog.Image, nil
}
