package database

import (
	"log"

	"github.com/workhive/workhive-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}

// Migrate creates/updates the schema. Relationship records (SavedJob,
// JobView, EventInterest, JobHiring, JobApplication) carry plain indexed
// columns rather than enforced foreign keys: deletes do not cascade, and
// readers filter dangling references instead.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.SavedJob{},
		&models.JobView{},
		&models.JobApplication{},
		&models.JobSeekerPost{},
		&models.JobHiring{},
		&models.Event{},
		&models.EventInterest{},
		&models.Blog{},
		&models.Message{},
		&models.Notification{},
	)
}
