package models

import (
	"errors"

	"github.com/railcoach/SpringShop/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var DB *gorm.DB

func InitDB() {
	var err error
	if config.MainConfig.Host != "" {
		DB, err = gorm.Open(postgres.Open(config.DSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	} else {
		// no postgres configured, fall back to a local sqlite file
		localDB := config.LocalDB
		if localDB == "" {
			localDB = "springshop.db"
		}
		DB, err = gorm.Open(sqlite.Open(localDB), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
	if err != nil {
		config.Log.Fatalw("Failed to connect to database", "error", err)
	}

	DB.NamingStrategy = schema.NamingStrategy{
		SingularTable: true,
	}

	if err := migrateAllTables(DB); err != nil {
		config.Log.Errorw("Failed to migrate tables", "error", err)
	}

	initDefaultActivities(DB)
}

// migrateAllTables runs AutoMigrate for every table in one pass
func migrateAllTables(db *gorm.DB) error {
	models := []interface{}{
		&SpringFailure{},
		&SpringType{},
		&DefectType{},
		&InspectionActivity{},
		&Inspector{},
		&ReportDraft{},
	}

	return db.AutoMigrate(models...)
}

// initDefaultActivities seeds the inspection activity master when the table is empty
func initDefaultActivities(db *gorm.DB) {
	var existing InspectionActivity
	result := db.First(&existing)
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return
	}

	defaults := []InspectionActivity{
		{ActivityText: "Check spring seating and alignment", ActivityType: ActivityVisual, SequenceNumber: 1, IsActive: true},
		{ActivityText: "Check for visible cracks or corrosion", ActivityType: ActivityVisual, SequenceNumber: 2, IsActive: true},
		{ActivityText: "Check spring colour code against bogie record", ActivityType: ActivityVisual, SequenceNumber: 3, IsActive: true},
		{ActivityText: "Gauge free height of spring", ActivityType: ActivityMustDo, SequenceNumber: 4, IsActive: true},
		{ActivityText: "Record load-deflection test result", ActivityType: ActivityMustDo, SequenceNumber: 5, IsActive: true},
	}
	if err := db.Create(&defaults).Error; err != nil {
		config.Log.Errorw("Failed to seed default activities", "error", err)
	} else {
		config.Log.Infow("Default inspection activities created")
	}
}
