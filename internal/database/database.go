package database

import (
	"log"

	"github.com/icsts-conf/registration-api/internal/config"
	"github.com/icsts-conf/registration-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.EnglishRegistration{},
		&models.JapaneseRegistration{},
		&models.ChildcareCapacity{},
		&models.APIKey{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	// Seed the childcare capacity singleton so the toggle always has a row.
	capacity := models.ChildcareCapacity{ID: models.ChildcareCapacityID}
	if err := db.FirstOrCreate(&capacity, models.ChildcareCapacity{ID: models.ChildcareCapacityID}).Error; err != nil {
		log.Fatalf("Failed to seed childcare capacity: %v", err)
	}

	return db
}
