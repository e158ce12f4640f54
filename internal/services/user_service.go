package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/media"
	"github.com/workhive/workhive-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB       *gorm.DB
	Tokens   *auth.Manager
	Uploader media.Uploader
}

func NewUserService(db *gorm.DB, tokens *auth.Manager, uploader media.Uploader) *UserService {
	return &UserService{DB: db, Tokens: tokens, Uploader: uploader}
}

func (s *UserService) Register(req *dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	var existing models.User
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, apperr.BadRequest("user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{Token: token, User: &user}, nil
}

func (s *UserService) Login(req *dtos.LoginRequest) (*dtos.AuthResponse, error) {
	var user models.User
	if err := s.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperr.BadRequest("invalid credentials")
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{Token: token, User: &user}, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &user, nil
}

// Update applies only the fields present in the request, keeping
// everything else untouched.
func (s *UserService) Update(id uint, req *dtos.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.JobTitle != "" {
		user.JobTitle = req.JobTitle
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.ContactPhone != "" {
		user.ContactPhone = req.ContactPhone
	}
	if req.ContactEmail != "" {
		user.ContactEmail = req.ContactEmail
	}
	if req.LinkedIn != "" {
		user.LinkedIn = req.LinkedIn
	}
	if req.GitHub != "" {
		user.GitHub = req.GitHub
	}
	if req.Twitter != "" {
		user.Twitter = req.Twitter
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Experience != nil {
		user.Experience = req.Experience
	}
	if req.Education != nil {
		user.Education = req.Education
	}
	if req.Projects != nil {
		user.Projects = req.Projects
	}
	if req.Certifications != nil {
		user.Certifications = req.Certifications
	}
	if req.Languages != nil {
		user.Languages = req.Languages
	}
	if req.Interests != nil {
		user.Interests = req.Interests
	}

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user record. Relationship rows referencing the user
// are intentionally left behind (no cascade); readers filter them out.
func (s *UserService) Delete(id uint) error {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

// SetProfilePhoto uploads the staged file and swaps the stored pair,
// deleting the previous image from the media host first.
func (s *UserService) SetProfilePhoto(ctx context.Context, userID uint, stagedPath string) (*models.Image, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if user.ProfilePhoto.PublicID != "" {
		if err := s.Uploader.Destroy(ctx, user.ProfilePhoto.PublicID); err != nil {
			return nil, fmt.Errorf("remove previous photo: %w", err)
		}
	}

	img, err := s.Uploader.Upload(ctx, stagedPath)
	if err != nil {
		return nil, err
	}

	user.ProfilePhoto = img
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return &user.ProfilePhoto, nil
}
