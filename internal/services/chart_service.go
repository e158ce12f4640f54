package services

import (
	"errors"

	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/models"
	"gorm.io/gorm"
)

// ChartRow is one bucket of a grouped aggregate.
type ChartRow struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// ChartService renders the dashboard aggregations as GROUP BY queries.
// These are pure reads; they never touch relationship state.
type ChartService struct {
	DB *gorm.DB
}

func NewChartService(db *gorm.DB) *ChartService {
	return &ChartService{DB: db}
}

// TrackView bumps a job's raw view counter without recording a viewer.
func (s *ChartService) TrackView(jobID uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("job")
		}
		return nil, err
	}
	if err := s.DB.Model(&job).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	job.Views++
	return &job, nil
}

func (s *ChartService) ViewsOverTime() ([]ChartRow, error) {
	return s.rows(&models.Job{}, "DATE(created_at)", "SUM(views)", "label ASC")
}

func (s *ChartService) ViewsByTitle() ([]ChartRow, error) {
	return s.rows(&models.Job{}, "job_title", "SUM(views)", "value DESC")
}

func (s *ChartService) ViewsByType() ([]ChartRow, error) {
	return s.rows(&models.Job{}, "job_type", "SUM(views)", "value DESC")
}

func (s *ChartService) PostingsByLocation() ([]ChartRow, error) {
	return s.rows(&models.Job{}, "location", "COUNT(*)", "value DESC")
}

func (s *ChartService) PostingsByCompany() ([]ChartRow, error) {
	return s.rows(&models.Job{}, "company_name", "COUNT(*)", "value DESC")
}

func (s *ChartService) PostingsByEmploymentType() ([]ChartRow, error) {
	return s.rows(&models.Job{}, "employment_type", "COUNT(*)", "value DESC")
}

func (s *ChartService) ApplicationsByJobType() ([]ChartRow, error) {
	var rows []ChartRow
	err := s.DB.Model(&models.Job{}).
		Select("jobs.job_type AS label, COUNT(job_applications.id) AS value").
		Joins("JOIN job_applications ON job_applications.job_id = jobs.id").
		Group("jobs.job_type").
		Order("value DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *ChartService) RegistrationsOverTime() ([]ChartRow, error) {
	return s.rows(&models.User{}, "DATE(created_at)", "COUNT(*)", "label ASC")
}

func (s *ChartService) SeekerPostsByExperienceLevel() ([]ChartRow, error) {
	return s.rows(&models.JobSeekerPost{}, "experience_level", "COUNT(*)", "value DESC")
}

func (s *ChartService) SeekerPostsOverTime() ([]ChartRow, error) {
	return s.rows(&models.JobSeekerPost{}, "DATE(created_at)", "COUNT(*)", "label ASC")
}

func (s *ChartService) HiringsOverTime() ([]ChartRow, error) {
	return s.rows(&models.JobHiring{}, "DATE(created_at)", "COUNT(*)", "label ASC")
}

func (s *ChartService) rows(model interface{}, group, agg, order string) ([]ChartRow, error) {
	var rows []ChartRow
	err := s.DB.Model(model).
		Select(group + " AS label, " + agg + " AS value").
		Group(group).
		Order(order).
		Scan(&rows).Error
	return rows, err
}
