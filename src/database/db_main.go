package database

import (
	"fmt"
	"strings"
	"time"

	"apitemplate/src/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite:"

// MainDB is the read/write connection, nil when ENABLE_DB is false.
var MainDB *gorm.DB

// Dialector picks the gorm driver from the URL scheme.
func Dialector(url string) gorm.Dialector {
	if path, ok := strings.CutPrefix(url, sqlitePrefix); ok {
		return sqlite.Open(path)
	}
	return postgres.Open(url)
}

// Open connects and tunes the pool. It does not run migrations.
func Open(config Config) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(config.DatabaseURL),
		&gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.LogLevel(config.GormLogLevel)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// Migrate creates or updates every table owned by this service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Exception{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// InitMainDB initializes MainDB and runs migrations. It is a no-op when the
// database is disabled.
func InitMainDB() error {
	config := GetConfig()
	if !config.EnableDB {
		logrus.Info("[database] disabled, exceptions will only be logged")
		return nil
	}

	db, err := Open(config)
	if err != nil {
		return err
	}

	// Assign to the global variable only after a successful connection.
	MainDB = db

	logrus.WithField("dialect", db.Dialector.Name()).Info("[database] MainDB connection established")

	if err := Migrate(MainDB); err != nil {
		return err
	}

	logrus.Info("[database] MainDB migrations completed")

	return nil
}
