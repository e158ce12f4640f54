package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/services"
)

type MessageHandler struct {
	Messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{Messages: messages}
}

// Send is the POST /api/messages endpoint.
func (h *MessageHandler) Send(c *gin.Context) {
	var req dtos.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid receiver ID"})
		return
	}

	msg, err := h.Messages.Send(auth.UserID(c), req.Receiver, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkRead is the POST /api/messages/mark-messages-as-read endpoint.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.Messages.MarkRead(auth.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Conversation is the GET /api/messages/:userId endpoint.
func (h *MessageHandler) Conversation(c *gin.Context) {
	partnerID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	resp, err := h.Messages.Conversation(
		auth.UserID(c), partnerID,
		queryInt(c, "page", 1), queryInt(c, "limit", 20),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Conversations is the GET /api/messages/conversations endpoint.
func (h *MessageHandler) Conversations(c *gin.Context) {
	conversations, err := h.Messages.Conversations(auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}
