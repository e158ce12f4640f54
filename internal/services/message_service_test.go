package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/models"
)

func TestSendPersistsBeforePush(t *testing.T) {
	db := newTestDB(t)
	emitter := &captureEmitter{}
	svc := NewMessageService(db, emitter)

	sender := seedUser(t, db, "alice")
	receiver := seedUser(t, db, "bob")

	msg, err := svc.Send(sender.ID, receiver.ID, "hello")
	require.NoError(t, err)
	assert.False(t, msg.IsRead)

	var stored models.Message
	require.NoError(t, db.First(&stored, msg.ID).Error)
	assert.Equal(t, "hello", stored.Body)

	var fresh models.User
	require.NoError(t, db.First(&fresh, receiver.ID).Error)
	assert.True(t, fresh.HasNewMessage)

	require.Len(t, emitter.events, 1)
	assert.Equal(t, receiver.ID, emitter.events[0].userID)
	assert.Equal(t, "newMessage", emitter.events[0].event)
}

func TestSendUnknownReceiver(t *testing.T) {
	db := newTestDB(t)
	emitter := &captureEmitter{}
	svc := NewMessageService(db, emitter)

	sender := seedUser(t, db, "alice")

	_, err := svc.Send(sender.ID, 999, "hello")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, emitter.events)

	var count int64
	require.NoError(t, db.Model(&models.Message{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMarkReadIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db, &captureEmitter{})

	sender := seedUser(t, db, "alice")
	receiver := seedUser(t, db, "bob")

	_, err := svc.Send(sender.ID, receiver.ID, "one")
	require.NoError(t, err)
	_, err = svc.Send(sender.ID, receiver.ID, "two")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(receiver.ID))

	var unread int64
	require.NoError(t, db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", receiver.ID, false).
		Count(&unread).Error)
	assert.EqualValues(t, 0, unread)

	var fresh models.User
	require.NoError(t, db.First(&fresh, receiver.ID).Error)
	assert.False(t, fresh.HasNewMessage)

	// Running it again is a no-op, not an error.
	require.NoError(t, svc.MarkRead(receiver.ID))
}

func TestConversationsLatestPerPartner(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db, &captureEmitter{})

	me := seedUser(t, db, "me")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")

	_, err := svc.Send(me.ID, bob.ID, "hi bob")
	require.NoError(t, err)
	_, err = svc.Send(bob.ID, me.ID, "hi back")
	require.NoError(t, err)
	_, err = svc.Send(carol.ID, me.ID, "hey")
	require.NoError(t, err)

	convos, err := svc.Conversations(me.ID)
	require.NoError(t, err)
	require.Len(t, convos, 2)

	byPartner := map[string]string{}
	for _, c := range convos {
		byPartner[c.PartnerName] = c.Message.Body
	}
	assert.Equal(t, "hi back", byPartner["bob"])
	assert.Equal(t, "hey", byPartner["carol"])
}

func TestConversationsSkipsDeletedPartner(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db, &captureEmitter{})

	me := seedUser(t, db, "me")
	bob := seedUser(t, db, "bob")

	_, err := svc.Send(me.ID, bob.ID, "hi bob")
	require.NoError(t, err)
	require.NoError(t, db.Delete(&models.User{}, bob.ID).Error)

	convos, err := svc.Conversations(me.ID)
	require.NoError(t, err)
	assert.Empty(t, convos)
}

func TestConversationPaginatesOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewMessageService(db, &captureEmitter{})

	me := seedUser(t, db, "me")
	bob := seedUser(t, db, "bob")

	for _, body := range []string{"one", "two", "three"} {
		_, err := svc.Send(me.ID, bob.ID, body)
		require.NoError(t, err)
	}

	res, err := svc.Conversation(me.ID, bob.ID, 1, 2)
	require.NoError(t, err)
	require.Len(t, res.Messages, 2)
	assert.Equal(t, "one", res.Messages[0].Body)
	assert.Equal(t, "me", res.Messages[0].SenderName)
	assert.Equal(t, "bob", res.Messages[0].ReceiverName)
	assert.Equal(t, 2, res.TotalPages)
}
