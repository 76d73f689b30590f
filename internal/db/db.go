package db

import (
	"log"
	"time"

	"github.com/dwalbeck/job-tracker-sub001/internal/config"
	"github.com/dwalbeck/job-tracker-sub001/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDB opens the dashboard's own database. Only the activity log lives here;
// every domain entity is owned by the backend API.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&models.ActivityLog{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
