package services

import (
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/models"
	"gorm.io/gorm"
)

// NotificationService reads the recipient's inbox; creation goes through
// the notify dispatcher, never through here.
type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) List(userID uint) (*dtos.NotificationListResponse, error) {
	var notifications []models.Notification
	err := s.DB.Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	var unread int64
	err = s.DB.Model(&models.Notification{}).
		Where("to_user_id = ? AND read = ?", userID, false).
		Count(&unread).Error
	if err != nil {
		return nil, err
	}

	return &dtos.NotificationListResponse{Notifications: notifications, UnreadCount: unread}, nil
}

// MarkRead flips every unread notification addressed to the user.
// Idempotent.
func (s *NotificationService) MarkRead(userID uint) error {
	return s.DB.Model(&models.Notification{}).
		Where("to_user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
