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
	"github.com/workhive/workhive-backend/internal/notify"
	"gorm.io/gorm"
)

const defaultCompanyLogo = "https://cdn.pixabay.com/photo/2017/01/14/10/57/job-1978390_960_720.png"

type JobService struct {
	DB       *gorm.DB
	Notifier notify.Notifier
	Uploader media.Uploader
}

func NewJobService(db *gorm.DB, notifier notify.Notifier, uploader media.Uploader) *JobService {
	return &JobService{DB: db, Notifier: notifier, Uploader: uploader}
}

func (s *JobService) Create(req *dtos.JobCreationRequest, postedBy uint, logo *models.Image) (*models.Job, error) {
	job := models.Job{
		JobTitle:            req.JobTitle,
		CompanyName:         req.CompanyName,
		CompanyDescription:  req.CompanyDescription,
		CompanyContactEmail: req.CompanyContactEmail,
		Location:            req.Location,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		ExperienceLevel:     req.ExperienceLevel,
		EmploymentType:      req.EmploymentType,
		EducationLevel:      req.EducationLevel,
		JobType:             req.JobType,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		PostedByID:          postedBy,
	}
	if logo != nil {
		job.CompanyLogo = *logo
	} else {
		job.CompanyLogo = models.Image{URL: defaultCompanyLogo}
	}

	if err := s.DB.Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) List(page, limit int) (*dtos.JobListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var count int64
	if err := s.DB.Model(&models.Job{}).Count(&count).Error; err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := s.DB.Offset((page - 1) * limit).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, err
	}

	return &dtos.JobListResponse{
		Jobs:        jobs,
		TotalPages:  int(math.Ceil(float64(count) / float64(limit))),
		CurrentPage: page,
		TotalJobs:   count,
	}, nil
}

// Get returns the job and, when a viewer is known, records the view:
// the JobView row is created once per (job, user) and the raw counter
// increments only on that first view.
func (s *JobService) Get(jobID, viewerID uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, err
	}

	if viewerID != 0 {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			var view models.JobView
			err := tx.Where("job_id = ? AND user_id = ?", jobID, viewerID).First(&view).Error
			if err == nil {
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if err := tx.Create(&models.JobView{JobID: jobID, UserID: viewerID}).Error; err != nil {
				return err
			}
			if err := tx.Model(&job).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
				return err
			}
			job.Views++
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return &job, nil
}

func (s *JobService) Update(jobID uint, req *dtos.JobCreationRequest) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, err
	}

	job.JobTitle = req.JobTitle
	job.CompanyName = req.CompanyName
	job.CompanyDescription = req.CompanyDescription
	job.CompanyContactEmail = req.CompanyContactEmail
	job.Location = req.Location
	job.SalaryMin = req.SalaryMin
	job.SalaryMax = req.SalaryMax
	job.ExperienceLevel = req.ExperienceLevel
	job.EmploymentType = req.EmploymentType
	job.EducationLevel = req.EducationLevel
	job.JobType = req.JobType
	if req.Requirements != nil {
		job.Requirements = req.Requirements
	}
	if req.Responsibilities != nil {
		job.Responsibilities = req.Responsibilities
	}

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Delete removes the job only. SavedJob/JobView/application rows keep
// their job_id on purpose; list endpoints filter the dangling referents.
func (s *JobService) Delete(jobID uint) error {
	res := s.DB.Delete(&models.Job{}, jobID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("job")
	}
	return nil
}

func (s *JobService) UploadLogo(ctx context.Context, jobID uint, stagedPath string) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, err
	}

	if job.CompanyLogo.PublicID != "" {
		if err := s.Uploader.Destroy(ctx, job.CompanyLogo.PublicID); err != nil {
			return nil, fmt.Errorf("remove previous logo: %w", err)
		}
	}

	img, err := s.Uploader.Upload(ctx, stagedPath)
	if err != nil {
		return nil, err
	}

	job.CompanyLogo = img
	if err := s.DB.Save(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Viewers returns the users who viewed the job, skipping viewer rows
// whose user no longer exists.
func (s *JobService) Viewers(jobID uint) (*dtos.JobViewersResponse, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, err
	}

	var viewers []models.User
	err := s.DB.
		Joins("JOIN job_views ON job_views.user_id = users.id").
		Where("job_views.job_id = ?", jobID).
		Find(&viewers).Error
	if err != nil {
		return nil, err
	}

	return &dtos.JobViewersResponse{Viewers: viewers, ViewCount: job.Views}, nil
}

// ToggleSave is the save/unsave relationship toggle. Both sides of the
// relationship move in one transaction; a save queues a notification to
// the job's poster, an unsave does not.
func (s *JobService) ToggleSave(userID, jobID uint) (*dtos.SaveJobResponse, error) {
	var (
		saved bool
		job   models.Job
		user  models.User
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("job")
			}
			return err
		}
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user")
			}
			return err
		}

		var rel models.SavedJob
		err := tx.Where("user_id = ? AND job_id = ?", userID, jobID).First(&rel).Error
		switch {
		case err == nil:
			saved = false
			return tx.Delete(&rel).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			saved = true
			return tx.Create(&models.SavedJob{UserID: userID, JobID: jobID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	if saved {
		s.Notifier.Dispatch(models.Notification{
			Type:       models.NotificationJobSaved,
			ToUserID:   job.PostedByID,
			FromUserID: userID,
			Message:    fmt.Sprintf("%s saved your job post.", user.Username),
			JobID:      &job.ID,
		})
	}

	savedJobs, err := s.savedJobIDs(userID)
	if err != nil {
		return nil, err
	}

	msg := "Job saved successfully"
	if !saved {
		msg = "Job unsaved successfully"
	}
	return &dtos.SaveJobResponse{Message: msg, IsSaved: saved, SavedJobs: savedJobs}, nil
}

// Apply creates the application and makes it discoverable from both the
// job and the applicant. At most one application may exist per
// (job, applicant) pair.
func (s *JobService) Apply(userID, jobID uint, resume, coverLetter string) (*models.JobApplication, error) {
	if resume == "" {
		return nil, apperr.BadRequest("resume file is required")
	}

	var (
		job  models.Job
		user models.User
		app  models.JobApplication
	)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("job")
			}
			return err
		}
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user")
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.JobApplication{}).
			Where("job_id = ? AND applicant_id = ?", jobID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("you have already applied for this job")
		}

		app = models.JobApplication{
			JobID:       jobID,
			ApplicantID: userID,
			Resume:      resume,
			CoverLetter: coverLetter,
		}
		return tx.Create(&app).Error
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.Dispatch(models.Notification{
		Type:       models.NotificationJobApplication,
		ToUserID:   job.PostedByID,
		FromUserID: userID,
		Message:    fmt.Sprintf("%s applied for your job post.", user.Username),
		JobID:      &job.ID,
	})
	return &app, nil
}

// Applicants lists the users who applied to a job, skipping applications
// whose applicant record is gone.
func (s *JobService) Applicants(jobID uint) (*dtos.ApplicantsResponse, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, err
	}

	var applicants []models.User
	err := s.DB.
		Joins("JOIN job_applications ON job_applications.applicant_id = users.id").
		Where("job_applications.job_id = ?", jobID).
		Find(&applicants).Error
	if err != nil {
		return nil, err
	}

	return &dtos.ApplicantsResponse{Applicants: applicants, ApplicantCount: len(applicants)}, nil
}

func (s *JobService) Filter(f *dtos.JobFilter) ([]models.Job, error) {
	q := s.DB.Model(&models.Job{})
	if f.JobTitle != "" {
		q = q.Where("LOWER(job_title) LIKE ?", "%"+lower(f.JobTitle)+"%")
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+lower(f.Location)+"%")
	}
	if f.JobType != "" {
		q = q.Where("LOWER(job_type) LIKE ?", "%"+lower(f.JobType)+"%")
	}
	if f.ExperienceLevel != "" {
		q = q.Where("experience_level = ?", f.ExperienceLevel)
	}
	if f.EmploymentType != "" {
		q = q.Where("employment_type = ?", f.EmploymentType)
	}
	if f.EducationLevel != "" {
		q = q.Where("education_level = ?", f.EducationLevel)
	}

	var jobs []models.Job
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Related finds up to ten jobs sharing a title fragment, company,
// location, or type with the given job.
func (s *JobService) Related(jobID uint) ([]models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, err
	}

	var related []models.Job
	err := s.DB.
		Where("id <> ?", jobID).
		Where(
			s.DB.Where("LOWER(job_title) LIKE ?", "%"+lower(job.JobTitle)+"%").
				Or("company_name = ?", job.CompanyName).
				Or("location = ?", job.Location).
				Or("job_type = ?", job.JobType),
		).
		Limit(10).
		Find(&related).Error
	if err != nil {
		return nil, err
	}
	return related, nil
}

func (s *JobService) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Job{}).Count(&count).Error
	return count, err
}

// DeleteSaved removes a saved-job bookmark without toggling. With the
// relationship held in one row, removing it clears both sides at once.
func (s *JobService) DeleteSaved(userID, jobID uint) error {
	res := s.DB.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("job not saved by user")
	}
	return nil
}

// SavedJobs returns the caller's saved job records, skipping bookmarks
// whose job has been deleted.
func (s *JobService) SavedJobs(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Joins("JOIN saved_jobs ON saved_jobs.job_id = jobs.id").
		Where("saved_jobs.user_id = ?", userID).
		Order("saved_jobs.created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) savedJobIDs(userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := s.DB.Model(&models.SavedJob{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("job_id", &ids).Error
	return ids, err
}
