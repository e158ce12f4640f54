package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/models"
)

func TestToggleInterest(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, nil)

	user := seedUser(t, db, "attendee")
	event := seedEvent(t, db, "GopherCon")

	res, err := svc.ToggleInterest(user.ID, event.ID)
	require.NoError(t, err)
	assert.True(t, res.Interested)
	assert.Equal(t, []uint{event.ID}, res.InterestedEvents)

	var count int64
	require.NoError(t, db.Model(&models.EventInterest{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	res, err = svc.ToggleInterest(user.ID, event.ID)
	require.NoError(t, err)
	assert.False(t, res.Interested)
	assert.Empty(t, res.InterestedEvents)

	require.NoError(t, db.Model(&models.EventInterest{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestToggleInterestMissingEvent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, nil)
	user := seedUser(t, db, "attendee")

	_, err := svc.ToggleInterest(user.ID, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestEventFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService(db, nil)

	seedEvent(t, db, "GopherCon")
	seedEvent(t, db, "RustConf")

	res, err := svc.Filter(&dtos.EventFilter{Title: "gopher"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "GopherCon", res.Events[0].Title)
	assert.EqualValues(t, 1, res.TotalEvents)
}
