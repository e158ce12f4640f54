package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/models"
)

func TestGlobalSearch(t *testing.T) {
	db := newTestDB(t)
	seekers := NewJobSeekerService(db, &captureNotifier{})
	svc := NewSearchService(db, seekers)

	gopher := seedUser(t, db, "gopherfan")
	seedUser(t, db, "alice")
	seedJob(t, db, "Gopher Wrangler", gopher.ID)
	seedJob(t, db, "Accountant", gopher.ID)
	seedSeekerPost(t, db, gopher.ID, "Gopher Herder")
	seedEvent(t, db, "GopherCon")

	require.NoError(t, db.Create(&models.Blog{
		Title:    "Why I like gophers",
		Content:  "They dig.",
		AuthorID: gopher.ID,
	}).Error)

	res, err := svc.Global("gopher")
	require.NoError(t, err)

	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "Gopher Wrangler", res.Jobs[0].JobTitle)
	require.Len(t, res.Users, 1)
	assert.Equal(t, "gopherfan", res.Users[0].Username)
	require.Len(t, res.JobSeekerPosts, 1)
	require.NotNil(t, res.JobSeekerPosts[0].User)
	assert.Len(t, res.Events, 1)
	assert.Len(t, res.Blogs, 1)
}

func TestGlobalSearchNoMatches(t *testing.T) {
	db := newTestDB(t)
	svc := NewSearchService(db, NewJobSeekerService(db, &captureNotifier{}))

	res, err := svc.Global("nothing-here")
	require.NoError(t, err)
	assert.Empty(t, res.Jobs)
	assert.Empty(t, res.Users)
	assert.Empty(t, res.Events)
	assert.Empty(t, res.Blogs)
	assert.Empty(t, res.JobSeekerPosts)
}
