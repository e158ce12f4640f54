package services

import (
	"errors"
	"math"

	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/models"
	"github.com/workhive/workhive-backend/internal/realtime"
	"gorm.io/gorm"
)

// MessageService persists direct messages and layers best-effort
// realtime delivery on top. The durable row always exists before the
// push is attempted; an offline receiver finds the message via
// Conversation/Conversations with the unread flag still set.
type MessageService struct {
	DB      *gorm.DB
	Emitter realtime.Emitter
}

func NewMessageService(db *gorm.DB, emitter realtime.Emitter) *MessageService {
	return &MessageService{DB: db, Emitter: emitter}
}

// Send persists the message and flips the receiver's new-message flag in
// one transaction, then pushes to the receiver's room if connected.
func (s *MessageService) Send(senderID, receiverID uint, body string) (*models.Message, error) {
	var msg models.Message

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var receiver models.User
		if err := tx.First(&receiver, receiverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("receiver")
			}
			return err
		}

		msg = models.Message{SenderID: senderID, ReceiverID: receiverID, Body: body}
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		return tx.Model(&receiver).Update("has_new_message", true).Error
	})
	if err != nil {
		return nil, err
	}

	s.Emitter.EmitToUser(receiverID, "newMessage", msg)
	return &msg, nil
}

// MarkRead flips every unread message addressed to the user and clears
// the new-message flag. Running it twice yields the same end state.
func (s *MessageService) MarkRead(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user")
			}
			return err
		}

		if err := tx.Model(&user).Update("has_new_message", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Message{}).
			Where("receiver_id = ? AND is_read = ?", userID, false).
			Update("is_read", true).Error
	})
}

// Conversation returns the paginated message history between two users,
// oldest first, with both display names attached.
func (s *MessageService) Conversation(currentID, partnerID uint, page, limit int) (*dtos.MessageListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	both := s.DB.Model(&models.Message{}).Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		currentID, partnerID, partnerID, currentID,
	)

	var total int64
	if err := both.Count(&total).Error; err != nil {
		return nil, err
	}

	var messages []models.Message
	if err := both.Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	names, err := s.usernames([]uint{currentID, partnerID})
	if err != nil {
		return nil, err
	}

	out := make([]dtos.MessageWithNames, 0, len(messages))
	for _, m := range messages {
		out = append(out, dtos.MessageWithNames{
			Message:      m,
			SenderName:   names[m.SenderID],
			ReceiverName: names[m.ReceiverID],
		})
	}

	return &dtos.MessageListResponse{
		Messages:    out,
		TotalPages:  int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage: page,
	}, nil
}

// Conversations returns the latest message exchanged with each partner,
// newest conversation first. Partners whose account is gone are skipped.
func (s *MessageService) Conversations(userID uint) ([]dtos.Conversation, error) {
	var messages []models.Message
	err := s.DB.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	partnerIDs := make([]uint, 0)
	latest := make(map[uint]models.Message)
	for _, m := range messages {
		partner := m.SenderID
		if partner == userID {
			partner = m.ReceiverID
		}
		if !seen[partner] {
			seen[partner] = true
			partnerIDs = append(partnerIDs, partner)
			latest[partner] = m
		}
	}

	names, err := s.usernames(partnerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.Conversation, 0, len(partnerIDs))
	for _, id := range partnerIDs {
		name, ok := names[id]
		if !ok {
			continue
		}
		out = append(out, dtos.Conversation{
			PartnerID:   id,
			PartnerName: name,
			Message:     latest[id],
		})
	}
	return out, nil
}

func (s *MessageService) usernames(ids []uint) (map[uint]string, error) {
	var users []models.User
	if len(ids) > 0 {
		if err := s.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
			return nil, err
		}
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}
