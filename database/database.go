package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/samyog8/community-events-backend/config"
	"github.com/samyog8/community-events-backend/models"
)

var DB *gorm.DB

// Connect opens the postgres connection and stores the handle in DB.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	logrus.WithFields(logrus.Fields{
		"host": cfg.DBHost,
		"name": cfg.DBName,
	}).Info("database connected")
	DB = db
	return db
}

// Migrate creates the schema: the six tables plus the uniqueness indexes
// that AutoMigrate cannot express. The registration index is partial: it
// only covers non-Cancelled rows, so a participant can re-register for an
// event after cancelling, while two live registrations for the same pair
// are impossible even under concurrent submissions. Participant emails are
// unique case-insensitively via an index on LOWER(email).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Venue{},
		&models.Activity{},
		&models.Event{},
		&models.EventActivity{},
		&models.Participant{},
		&models.Registration{},
	); err != nil {
		return err
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_participants_email_lower
			ON participants (LOWER(email))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_registrations_one_active
			ON registrations (participant_id, event_id)
			WHERE status <> 'Cancelled'`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
