package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/apperr"
)

func TestTrackView(t *testing.T) {
	db := newTestDB(t)
	svc := NewChartService(db)

	poster := seedUser(t, db, "poster")
	job := seedJob(t, db, "Backend Engineer", poster.ID)

	got, err := svc.TrackView(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)

	got, err = svc.TrackView(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Views)

	_, err = svc.TrackView(999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPostingsByLocation(t *testing.T) {
	db := newTestDB(t)
	svc := NewChartService(db)

	poster := seedUser(t, db, "poster")
	seedJob(t, db, "One", poster.ID)
	seedJob(t, db, "Two", poster.ID)

	rows, err := svc.PostingsByLocation()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Remote", rows[0].Label)
	assert.EqualValues(t, 2, rows[0].Value)
}

func TestViewsByTitleOrdersDescending(t *testing.T) {
	db := newTestDB(t)
	svc := NewChartService(db)

	poster := seedUser(t, db, "poster")
	quiet := seedJob(t, db, "Quiet", poster.ID)
	busy := seedJob(t, db, "Busy", poster.ID)

	_, err := svc.TrackView(quiet.ID)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = svc.TrackView(busy.ID)
		require.NoError(t, err)
	}

	rows, err := svc.ViewsByTitle()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Busy", rows[0].Label)
	assert.EqualValues(t, 3, rows[0].Value)
	assert.Equal(t, "Quiet", rows[1].Label)
}
