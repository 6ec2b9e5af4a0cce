package database

import (
	"jetsetgo/config"
	"jetsetgo/helper"
	"jetsetgo/model"
	"log"

	"gorm.io/gorm"
)

// SeedData creates the admin from ADMIN_EMAIL / ADMIN_PASSWORD when the admin
// collection is empty.
func SeedData(db *gorm.DB) {
	email, password := config.Config("ADMIN_EMAIL"), config.Config("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		log.Println("failed to count admins:", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		log.Println("failed to hash admin password:", err)
		return
	}
	admin := model.Admin{
		AdminName:     "admin",
		AdminEmail:    email,
		AdminPassword: hash,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("failed to seed data for admin:", email, "error:", err)
		return
	}
	log.Println("seeded admin:", email)
}
