package services

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/samyog8/community-events-backend/database"
	"github.com/samyog8/community-events-backend/models"
)

// newTestDB opens a throwaway sqlite database with the production schema,
// including the partial unique index on registrations.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	dsn := "file:" + path + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func mustCreate[T any](t *testing.T, db *gorm.DB, entity *T) *T {
	t.Helper()
	if err := db.Create(entity).Error; err != nil {
		t.Fatalf("create %T: %v", entity, err)
	}
	return entity
}

func testEvent(date time.Time, capacity int) *models.Event {
	return &models.Event{
		Name:        "Summer Community Festival",
		Description: "Annual summer celebration",
		Date:        models.DateOnly(date),
		StartTime:   "10:00",
		EndTime:     "18:00",
		MaxCapacity: capacity,
		IsActive:    true,
	}
}

func testParticipant(email string) *models.Participant {
	return &models.Participant{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		IsActive:  true,
	}
}

func futureDate(days int) time.Time {
	return models.Today().AddDate(0, 0, days)
}
