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

const defaultEventLogo = "https://via.placeholder.com/150"

type EventService struct {
	DB       *gorm.DB
	Uploader media.Uploader
}

func NewEventService(db *gorm.DB, uploader media.Uploader) *EventService {
	return &EventService{DB: db, Uploader: uploader}
}

func (s *EventService) Create(req *dtos.EventRequest, logo *models.Image) (*models.Event, error) {
	event := models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		CompanyName: req.CompanyName,
	}
	if logo != nil {
		event.CompanyLogo = *logo
	} else {
		event.CompanyLogo = models.Image{URL: defaultEventLogo}
	}

	if err := s.DB.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) Get(eventID uint) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("event")
		}
		return nil, err
	}
	return &event, nil
}

func (s *EventService) List(page, limit int) (*dtos.EventListResponse, error) {
	return s.listWhere(s.DB.Model(&models.Event{}), page, limit)
}

func (s *EventService) Filter(f *dtos.EventFilter, page, limit int) (*dtos.EventListResponse, error) {
	q := s.DB.Model(&models.Event{})
	if f.Title != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+lower(f.Title)+"%")
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+lower(f.Location)+"%")
	}
	if f.Company != "" {
		q = q.Where("LOWER(company_name) LIKE ?", "%"+lower(f.Company)+"%")
	}
	if f.Date != "" {
		q = q.Where("DATE(date) = ?", f.Date)
	}
	return s.listWhere(q, page, limit)
}

func (s *EventService) listWhere(q *gorm.DB, page, limit int) (*dtos.EventListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var events []models.Event
	if err := q.Offset((page - 1) * limit).Limit(limit).Find(&events).Error; err != nil {
		return nil, err
	}

	return &dtos.EventListResponse{
		Events:      events,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		TotalEvents: total,
	}, nil
}

func (s *EventService) Update(eventID uint, req *dtos.EventRequest) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("event")
		}
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.Date = req.Date
	event.Location = req.Location
	event.CompanyName = req.CompanyName

	if err := s.DB.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes the event and its hosted logo. Interest rows keep their
// event_id; interest lists filter the dangling referents.
func (s *EventService) Delete(ctx context.Context, eventID uint) error {
	var event models.Event
	if err := s.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("event")
		}
		return err
	}

	if err := s.DB.Delete(&event).Error; err != nil {
		return err
	}
	if event.CompanyLogo.PublicID != "" {
		if err := s.Uploader.Destroy(ctx, event.CompanyLogo.PublicID); err != nil {
			return fmt.Errorf("remove event logo: %w", err)
		}
	}
	return nil
}

func (s *EventService) UploadLogo(ctx context.Context, eventID uint, stagedPath string) (*models.Image, error) {
	var event models.Event
	if err := s.DB.First(&event, eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("event")
		}
		return nil, err
	}

	if event.CompanyLogo.PublicID != "" {
		if err := s.Uploader.Destroy(ctx, event.CompanyLogo.PublicID); err != nil {
			return nil, fmt.Errorf("remove previous logo: %w", err)
		}
	}

	img, err := s.Uploader.Upload(ctx, stagedPath)
	if err != nil {
		return nil, err
	}

	event.CompanyLogo = img
	if err := s.DB.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event.CompanyLogo, nil
}

// ToggleInterest flips the user's interest in an event. The relationship
// is single-sided on purpose: only the user's side is indexed, no
// notification is emitted, and the event carries no reverse list.
func (s *EventService) ToggleInterest(userID, eventID uint) (*dtos.InterestResponse, error) {
	var interested bool

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user")
			}
			return err
		}
		var event models.Event
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("event")
			}
			return err
		}

		var rel models.EventInterest
		err := tx.Where("user_id = ? AND event_id = ?", userID, eventID).First(&rel).Error
		switch {
		case err == nil:
			interested = false
			return tx.Delete(&rel).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			interested = true
			return tx.Create(&models.EventInterest{UserID: userID, EventID: eventID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	ids, err := s.interestedEventIDs(userID)
	if err != nil {
		return nil, err
	}

	msg := "Event marked as interested"
	if !interested {
		msg = "Event removed from interests"
	}
	return &dtos.InterestResponse{Message: msg, Interested: interested, InterestedEvents: ids}, nil
}

func (s *EventService) interestedEventIDs(userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := s.DB.Model(&models.EventInterest{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("event_id", &ids).Error
	return ids, err
}

func (s *EventService) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Event{}).Count(&count).Error
	return count, err
}
