package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/models"
	"github.com/workhive/workhive-backend/internal/notify"
	"gorm.io/gorm"
)

type JobSeekerService struct {
	DB       *gorm.DB
	Notifier notify.Notifier
}

func NewJobSeekerService(db *gorm.DB, notifier notify.Notifier) *JobSeekerService {
	return &JobSeekerService{DB: db, Notifier: notifier}
}

func (s *JobSeekerService) Create(userID uint, req *dtos.JobSeekerPostRequest) (*models.JobSeekerPost, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}

	post := models.JobSeekerPost{
		UserID:          userID,
		JobTitle:        req.JobTitle,
		Location:        req.Location,
		Description:     req.Description,
		Skills:          req.Skills,
		ExperienceLevel: req.ExperienceLevel,
		EducationLevel:  req.EducationLevel,
	}
	if err := s.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns paginated posts, newest first, with each post's owner
// attached. Posts whose owner has been deleted are kept with a nil
// profile rather than dropped.
func (s *JobSeekerService) List(page, limit int, skills, name, jobTitle string) (*dtos.SeekerPostListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	q := s.DB.Model(&models.JobSeekerPost{})
	if skills != "" {
		q = q.Where("LOWER(skills) LIKE ?", "%"+lower(skills)+"%")
	}
	if jobTitle != "" {
		q = q.Where("LOWER(job_title) LIKE ?", "%"+lower(jobTitle)+"%")
	}
	if name != "" {
		var userIDs []uint
		if err := s.DB.Model(&models.User{}).
			Where("LOWER(username) LIKE ?", "%"+lower(name)+"%").
			Pluck("id", &userIDs).Error; err != nil {
			return nil, err
		}
		q = q.Where("user_id IN ?", userIDs)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.JobSeekerPost
	if err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}

	withUsers, err := s.attachUsers(posts)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return &dtos.SeekerPostListResponse{
		Posts:       withUsers,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}, nil
}

func (s *JobSeekerService) attachUsers(posts []models.JobSeekerPost) ([]dtos.SeekerPostWithUser, error) {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.UserID)
	}

	var users []models.User
	if len(ids) > 0 {
		if err := s.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
			return nil, err
		}
	}
	byID := make(map[uint]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	out := make([]dtos.SeekerPostWithUser, 0, len(posts))
	for _, p := range posts {
		out = append(out, dtos.SeekerPostWithUser{JobSeekerPost: p, User: byID[p.UserID]})
	}
	return out, nil
}

// ToggleHire toggles the ternary hiring relation for the exact triple.
// All three mirrors (post hirings, hired user's jobs, employer's hired
// posts) live in the single JobHiring row, so they move together inside
// one transaction. The hired user is notified either way.
func (s *JobSeekerService) ToggleHire(req *dtos.HireRequest) (*dtos.HireResponse, error) {
	var (
		hired    bool
		hiring   models.JobHiring
		post     models.JobSeekerPost
		employer models.User
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, req.JobSeekerPostID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("job seeker post, hired user, or employer")
			}
			return err
		}
		var hiredUser models.User
		if err := tx.First(&hiredUser, req.HiredUserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("job seeker post, hired user, or employer")
			}
			return err
		}
		if err := tx.First(&employer, req.EmployerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("job seeker post, hired user, or employer")
			}
			return err
		}

		err := tx.Where("job_seeker_post_id = ? AND hired_user_id = ? AND employer_id = ?",
			req.JobSeekerPostID, req.HiredUserID, req.EmployerID).
			First(&hiring).Error
		switch {
		case err == nil:
			hired = false
			return tx.Delete(&hiring).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			hired = true
			hiring = models.JobHiring{
				JobSeekerPostID: req.JobSeekerPostID,
				HiredUserID:     req.HiredUserID,
				EmployerID:      req.EmployerID,
			}
			return tx.Create(&hiring).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	notifType := models.NotificationHired
	notifMsg := fmt.Sprintf("You have been hired by %s for the job post: %s", employer.Username, post.JobTitle)
	if !hired {
		notifType = models.NotificationUnhired
		notifMsg = fmt.Sprintf("You have been unhired by %s for the job post: %s", employer.Username, post.JobTitle)
	}
	s.Notifier.Dispatch(models.Notification{
		Type:            notifType,
		ToUserID:        req.HiredUserID,
		FromUserID:      req.EmployerID,
		Message:         notifMsg,
		JobSeekerPostID: &post.ID,
	})

	hiredPosts, err := s.hiredJobPostIDs(req.EmployerID)
	if err != nil {
		return nil, err
	}

	msg := "User hired successfully"
	if !hired {
		msg = "User unhired successfully"
	}
	return &dtos.HireResponse{
		Message:       msg,
		Hired:         hired,
		HiringJob:     &hiring,
		HiredJobPosts: hiredPosts,
	}, nil
}

func (s *JobSeekerService) hiredJobPostIDs(employerID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := s.DB.Model(&models.JobHiring{}).
		Where("employer_id = ?", employerID).
		Distinct("job_seeker_post_id").
		Pluck("job_seeker_post_id", &ids).Error
	return ids, err
}

// HiringDetails flattens every hiring record to its three display names,
// skipping records whose referents have been deleted.
func (s *JobSeekerService) HiringDetails() ([]dtos.HiringDetail, error) {
	var hirings []models.JobHiring
	if err := s.DB.Find(&hirings).Error; err != nil {
		return nil, err
	}

	details := make([]dtos.HiringDetail, 0, len(hirings))
	for _, h := range hirings {
		var (
			post     models.JobSeekerPost
			hired    models.User
			employer models.User
		)
		if s.DB.First(&post, h.JobSeekerPostID).Error != nil {
			continue
		}
		if s.DB.First(&hired, h.HiredUserID).Error != nil {
			continue
		}
		if s.DB.First(&employer, h.EmployerID).Error != nil {
			continue
		}
		details = append(details, dtos.HiringDetail{
			HiredUser: hired.Username,
			Employer:  employer.Username,
			JobTitle:  post.JobTitle,
		})
	}
	return details, nil
}

// Update modifies a post; only its owner may do so.
func (s *JobSeekerService) Update(postID, callerID uint, req *dtos.JobSeekerPostUpdate) (*models.JobSeekerPost, error) {
	var post models.JobSeekerPost
	if err := s.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post")
		}
		return nil, err
	}
	if post.UserID != callerID {
		return nil, apperr.Forbidden("not the post owner")
	}

	if req.JobTitle != "" {
		post.JobTitle = req.JobTitle
	}
	if req.Location != "" {
		post.Location = req.Location
	}
	if req.Description != "" {
		post.Description = req.Description
	}
	if req.Skills != nil {
		post.Skills = req.Skills
	}
	if req.ExperienceLevel != "" {
		post.ExperienceLevel = req.ExperienceLevel
	}
	if req.EducationLevel != "" {
		post.EducationLevel = req.EducationLevel
	}

	if err := s.DB.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes a post; only its owner may do so. Hiring rows pointing
// at the post are left behind (no cascade).
func (s *JobSeekerService) Delete(postID, callerID uint) error {
	var post models.JobSeekerPost
	if err := s.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("post")
		}
		return err
	}
	if post.UserID != callerID {
		return apperr.Forbidden("not the post owner")
	}
	return s.DB.Delete(&post).Error
}

func (s *JobSeekerService) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.JobSeekerPost{}).Count(&count).Error
	return count, err
}
