package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/dtos"
	"github.com/workhive/workhive-backend/internal/models"
)

func TestToggleHire(t *testing.T) {
	db := newTestDB(t)
	notifier := &captureNotifier{}
	svc := NewJobSeekerService(db, notifier)

	seeker := seedUser(t, db, "seeker")
	employer := seedUser(t, db, "employer")
	post := seedSeekerPost(t, db, seeker.ID, "Go Developer")

	req := &dtos.HireRequest{
		JobSeekerPostID: post.ID,
		HiredUserID:     seeker.ID,
		EmployerID:      employer.ID,
	}

	res, err := svc.ToggleHire(req)
	require.NoError(t, err)
	assert.True(t, res.Hired)
	assert.Equal(t, []uint{post.ID}, res.HiredJobPosts)

	var count int64
	require.NoError(t, db.Model(&models.JobHiring{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	require.Len(t, notifier.sent, 1)
	n := notifier.sent[0]
	assert.Equal(t, models.NotificationHired, n.Type)
	assert.Equal(t, seeker.ID, n.ToUserID)
	assert.Equal(t, employer.ID, n.FromUserID)
	require.NotNil(t, n.JobSeekerPostID)
	assert.Equal(t, post.ID, *n.JobSeekerPostID)
	assert.Nil(t, n.JobID)

	// Toggling the same triple reverses the hire and notifies the unhire.
	res, err = svc.ToggleHire(req)
	require.NoError(t, err)
	assert.False(t, res.Hired)
	assert.Empty(t, res.HiredJobPosts)

	require.NoError(t, db.Model(&models.JobHiring{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, models.NotificationUnhired, notifier.sent[1].Type)
	assert.Equal(t, seeker.ID, notifier.sent[1].ToUserID)
}

func TestToggleHireMissingReferent(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db, &captureNotifier{})

	seeker := seedUser(t, db, "seeker")
	post := seedSeekerPost(t, db, seeker.ID, "Go Developer")

	_, err := svc.ToggleHire(&dtos.HireRequest{
		JobSeekerPostID: post.ID,
		HiredUserID:     seeker.ID,
		EmployerID:      999,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.JobHiring{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSeekerPostUpdateOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db, &captureNotifier{})

	owner := seedUser(t, db, "owner")
	stranger := seedUser(t, db, "stranger")
	post := seedSeekerPost(t, db, owner.ID, "Go Developer")

	_, err := svc.Update(post.ID, stranger.ID, &dtos.JobSeekerPostUpdate{JobTitle: "Hijacked"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	updated, err := svc.Update(post.ID, owner.ID, &dtos.JobSeekerPostUpdate{JobTitle: "Senior Go Developer"})
	require.NoError(t, err)
	assert.Equal(t, "Senior Go Developer", updated.JobTitle)
	assert.Equal(t, "Berlin", updated.Location)
}

func TestSeekerListKeepsOrphanedPosts(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db, &captureNotifier{})

	owner := seedUser(t, db, "owner")
	seedSeekerPost(t, db, owner.ID, "Go Developer")
	require.NoError(t, db.Delete(&models.User{}, owner.ID).Error)

	res, err := svc.List(1, 10, "", "", "")
	require.NoError(t, err)
	require.Len(t, res.Posts, 1)
	assert.Nil(t, res.Posts[0].User)
}

func TestSeekerListFiltersBySkills(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db, &captureNotifier{})

	owner := seedUser(t, db, "owner")
	seedSeekerPost(t, db, owner.ID, "Go Developer")

	other := models.JobSeekerPost{
		UserID:      owner.ID,
		JobTitle:    "Designer",
		Location:    "Paris",
		Description: "Portfolio on request",
		Skills:      []string{"figma"},
	}
	require.NoError(t, db.Create(&other).Error)

	res, err := svc.List(1, 10, "sql", "", "")
	require.NoError(t, err)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, "Go Developer", res.Posts[0].JobTitle)
}
