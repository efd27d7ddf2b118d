package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pda-backend/internal/config"
	"pda-backend/internal/models"
)

// Open connects to Postgres when DATABASE_URL is set and to a local
// SQLite file otherwise, then migrates the schema.
func Open(settings config.Settings) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if settings.DatabaseURL != "" {
		dialector = postgres.Open(settings.DatabaseURL)
	} else {
		if err := os.MkdirAll(filepath.Dir(settings.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
		dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", settings.DBPath)
		dialector = sqlite.Open(dsn)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := database.AutoMigrate(
		&models.User{},
		&models.Medication{},
		&models.Reminder{},
		&models.Report{},
		&models.TestRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return database, nil
}
