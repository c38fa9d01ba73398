package main

import (
	"log"
	"os"

	"go-store-api/internal/model"
	"go-store-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds (or resets) the admin account used for the admin-only order listing.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	// 3. Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 4. Create or reset
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		admin := &model.User{
			Email:    email,
			FullName: "Administrator",
			IsAdmin:  true,
			IsActive: true,
			Password: string(hashedPassword),
		}
		if err := db.Create(admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Admin user created: %s", email)
		return
	}

	if err := db.Model(&user).Updates(map[string]interface{}{
		"password": string(hashedPassword),
		"is_admin": true,
	}).Error; err != nil {
		log.Fatalf("Failed to update admin in DB: %v", err)
	}
	log.Printf("Password for %s has been reset", email)
}
