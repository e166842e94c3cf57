package sqlite

import (
	"clinic/cmd/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

// SampleDoctors are inserted into an empty doctors table on startup.
var SampleDoctors = []entity.Doctor{
	{FirstName: "John", LastName: "Smith"},
	{FirstName: "Michael", LastName: "Johnson"},
	{FirstName: "Emily", LastName: "Williams"},
	{FirstName: "Daniel", LastName: "Brown"},
	{FirstName: "Sarah", LastName: "Davis"},
}

func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Doctor{}, &entity.Patient{}, &entity.Appointment{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// SeedDoctors inserts SampleDoctors when no doctor exists yet and
// reports how many rows were created.
func SeedDoctors(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&entity.Doctor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	doctors := make([]entity.Doctor, len(SampleDoctors))
	copy(doctors, SampleDoctors)
	if err := db.Create(&doctors).Error; err != nil {
		return 0, err
	}
	return len(doctors), nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
