package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/workhive/workhive-backend/internal/auth"
	"github.com/workhive/workhive-backend/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect cross-origin; auth happens via the token,
	// not the Origin header.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	Hub    *realtime.Hub
	Tokens *auth.Manager
}

func NewWSHandler(hub *realtime.Hub, tokens *auth.Manager) *WSHandler {
	return &WSHandler{Hub: hub, Tokens: tokens}
}

// Connect is the GET /ws endpoint. The client authenticates with its
// token (header or ?token= for browser WebSocket clients) and is
// subscribed to the room matching its own user id.
func (h *WSHandler) Connect(c *gin.Context) {
	raw := c.GetHeader("Authorization")
	if raw == "" {
		raw = c.Query("token")
	}
	userID, err := h.Tokens.Verify(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed for user %d: %v", userID, err)
		return
	}

	h.Hub.Serve(userID, conn)
}
