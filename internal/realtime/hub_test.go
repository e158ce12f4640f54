package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub, userID uint) *Client {
	return &Client{hub: h, userID: userID, send: make(chan []byte, sendBuffer)}
}

func TestRoomBookkeeping(t *testing.T) {
	h := NewHub()
	assert.False(t, h.Connected(1))

	a := newTestClient(h, 1)
	b := newTestClient(h, 1)
	h.join(1, a)
	h.join(1, b)
	assert.True(t, h.Connected(1))

	h.leave(1, a)
	assert.True(t, h.Connected(1))

	h.leave(1, b)
	assert.False(t, h.Connected(1))
	assert.Empty(t, h.rooms)
}

func TestEmitToUserWrapsEnvelope(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, 7)
	h.join(7, c)

	h.EmitToUser(7, "notification", map[string]string{"message": "hi"})

	require.Len(t, c.send, 1)
	var got struct {
		Event string            `json:"event"`
		Data  map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(<-c.send, &got))
	assert.Equal(t, "notification", got.Event)
	assert.Equal(t, "hi", got.Data["message"])
}

func TestEmitToOfflineUserIsDropped(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, 7)
	h.join(7, c)

	h.EmitToUser(8, "notification", "ignored")
	assert.Empty(t, c.send)
}

func TestEmitDropsClientWithFullBuffer(t *testing.T) {
	h := NewHub()
	c := &Client{hub: h, userID: 7, send: make(chan []byte, 1)}
	h.join(7, c)
	c.send <- []byte("backlog")

	h.EmitToUser(7, "notification", "overflow")
	assert.False(t, h.Connected(7))
}
