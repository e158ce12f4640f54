package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/models"
)

func TestNotificationListAndMarkRead(t *testing.T) {
	db := newTestDB(t)
	svc := NewNotificationService(db)

	recipient := seedUser(t, db, "recipient")
	other := seedUser(t, db, "other")
	jobID := uint(7)

	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Notification{
			Type:       models.NotificationJobSaved,
			ToUserID:   recipient.ID,
			FromUserID: other.ID,
			Message:    "someone saved your job post.",
			JobID:      &jobID,
		}).Error)
	}
	// Someone else's notification stays out of the list.
	require.NoError(t, db.Create(&models.Notification{
		Type:       models.NotificationJobSaved,
		ToUserID:   other.ID,
		FromUserID: recipient.ID,
		Message:    "noise",
		JobID:      &jobID,
	}).Error)

	res, err := svc.List(recipient.ID)
	require.NoError(t, err)
	assert.Len(t, res.Notifications, 2)
	assert.EqualValues(t, 2, res.UnreadCount)

	require.NoError(t, svc.MarkRead(recipient.ID))

	res, err = svc.List(recipient.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.UnreadCount)

	// Idempotent.
	require.NoError(t, svc.MarkRead(recipient.ID))
}
