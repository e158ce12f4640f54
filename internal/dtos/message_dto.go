package dtos

import "github.com/workhive/workhive-backend/internal/models"

type SendMessageRequest struct {
	Receiver uint   `json:"receiver" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

type MessageWithNames struct {
	models.Message
	SenderName   string `json:"sender_name"`
	ReceiverName string `json:"receiver_name"`
}

type MessageListResponse struct {
	Messages    []MessageWithNames `json:"messages"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
}

// Conversation is the latest message exchanged with one partner.
type Conversation struct {
	PartnerID   uint           `json:"partner_id"`
	PartnerName string         `json:"partner_name"`
	Message     models.Message `json:"message"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}
