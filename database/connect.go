package database

import (
	"fmt"
	"jetsetgo/config"
	"jetsetgo/model"
	"log"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the store pool, migrates every collection and seeds the
// default admin. The caller owns the returned handle and must Close it.
func ConnectDB() (*gorm.DB, error) {
	port, err := strconv.ParseUint(config.Config("DB_PORT"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	log.Println("Connection Opened to Database")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	SeedData(db)
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database Migrated")
	return nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("failed to get database pool: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
		return
	}
	log.Println("Database connection closed")
}
