package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/database"
	"github.com/workhive/workhive-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database named after the test so parallel
// tests never share state, and runs the full migration against it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// captureNotifier records dispatched notifications instead of delivering
// them, so tests can assert on what a mutation produced.
type captureNotifier struct {
	sent []models.Notification
}

func (c *captureNotifier) Dispatch(n models.Notification) {
	c.sent = append(c.sent, n)
}

type emittedEvent struct {
	userID  uint
	event   string
	payload interface{}
}

// captureEmitter records realtime pushes; every user looks connected.
type captureEmitter struct {
	events []emittedEvent
}

func (c *captureEmitter) EmitToUser(userID uint, event string, payload interface{}) {
	c.events = append(c.events, emittedEvent{userID: userID, event: event, payload: payload})
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedJob(t *testing.T, db *gorm.DB, title string, postedBy uint) *models.Job {
	t.Helper()
	job := models.Job{
		JobTitle:    title,
		CompanyName: "Acme",
		Location:    "Remote",
		JobType:     "IT",
		PostedByID:  postedBy,
	}
	require.NoError(t, db.Create(&job).Error)
	return &job
}

func seedSeekerPost(t *testing.T, db *gorm.DB, userID uint, title string) *models.JobSeekerPost {
	t.Helper()
	post := models.JobSeekerPost{
		UserID:      userID,
		JobTitle:    title,
		Location:    "Berlin",
		Description: "Looking for work",
		Skills:      []string{"go", "sql"},
	}
	require.NoError(t, db.Create(&post).Error)
	return &post
}

func seedEvent(t *testing.T, db *gorm.DB, title string) *models.Event {
	t.Helper()
	event := models.Event{
		Title:       title,
		Description: "Annual meetup",
		Location:    "Lisbon",
		CompanyName: "Acme",
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}
