package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workhive/workhive-backend/internal/apperr"
	"github.com/workhive/workhive-backend/internal/database"
	"github.com/workhive/workhive-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

type recordedPush struct {
	userID uint
	event  string
}

type fakeEmitter struct {
	pushes []recordedPush
}

func (f *fakeEmitter) EmitToUser(userID uint, event string, payload interface{}) {
	f.pushes = append(f.pushes, recordedPush{userID: userID, event: event})
}

func TestDeliverPersistsThenPushes(t *testing.T) {
	db := newTestDB(t)
	emitter := &fakeEmitter{}
	d := NewDispatcher(db, emitter)

	jobID := uint(3)
	err := d.Deliver(models.Notification{
		Type:     models.NotificationJobSaved,
		ToUserID: 1, FromUserID: 2,
		Message: "someone saved your job post.",
		JobID:   &jobID,
	})
	require.NoError(t, err)

	var stored models.Notification
	require.NoError(t, db.First(&stored).Error)
	assert.False(t, stored.Read)
	assert.Equal(t, uint(1), stored.ToUserID)

	require.Len(t, emitter.pushes, 1)
	assert.Equal(t, uint(1), emitter.pushes[0].userID)
	assert.Equal(t, "notification", emitter.pushes[0].event)
}

func TestDeliverRejectsMissingReference(t *testing.T) {
	db := newTestDB(t)
	emitter := &fakeEmitter{}
	d := NewDispatcher(db, emitter)

	err := d.Deliver(models.Notification{
		Type:     models.NotificationJobSaved,
		ToUserID: 1, FromUserID: 2,
		Message: "no reference",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Empty(t, emitter.pushes)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeliverRejectsBothReferences(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(db, &fakeEmitter{})

	jobID, postID := uint(1), uint(2)
	err := d.Deliver(models.Notification{
		Type:     models.NotificationHired,
		ToUserID: 1, FromUserID: 2,
		Message:         "ambiguous",
		JobID:           &jobID,
		JobSeekerPostID: &postID,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDispatchDrainsOnStop(t *testing.T) {
	db := newTestDB(t)
	emitter := &fakeEmitter{}
	d := NewDispatcher(db, emitter)
	d.Start()

	jobID := uint(3)
	for i := 0; i < 5; i++ {
		d.Dispatch(models.Notification{
			Type:     models.NotificationJobSaved,
			ToUserID: 1, FromUserID: 2,
			Message: "saved",
			JobID:   &jobID,
		})
	}
	d.Stop()

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 5, count)
	assert.Len(t, emitter.pushes, 5)
}
