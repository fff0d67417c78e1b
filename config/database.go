package config

import (
	"fmt"
	"time"

	"github.com/namratah118/trykymi/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB opens the MySQL connection and migrates the schema.
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return MigrateDB(DB)
}

// MigrateDB migrates all tables. Exposed so tests can migrate an
// in-memory database with the same schema.
func MigrateDB(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.Plan{},
		&models.Reminder{},
		&models.TimeEntry{},
		&models.DailyCheckin{},
		&models.ChatMessage{},
	)
	if err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}
	return nil
}
