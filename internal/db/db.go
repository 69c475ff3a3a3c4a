package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/store"
)

func NewDB(dbURL string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Booking{},
		&models.Review{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}

	seedReviews(db)

	return db
}

// seedReviews imports the Google reviews on first run only.
func seedReviews(db *gorm.DB) {
	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count > 0 {
		return
	}

	reviews := store.SeedReviews()
	if err := db.Create(&reviews).Error; err != nil {
		logrus.WithError(err).Warn("failed to seed reviews")
	}
}
