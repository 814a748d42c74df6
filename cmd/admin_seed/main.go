// Command admin_seed creates the initial admin account.
package main

import (
	"log"
	"os"

	"boostify/internal/config"
	"boostify/internal/models"
	"boostify/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if sqlDB, err := repositories.DB.DB(); err == nil {
			sqlDB.Close()
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	var existing models.User
	if err := repositories.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Name:         "Administrator",
		Role:         "admin",
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	wallet := models.Wallet{UserID: admin.ID, Currency: models.CurrencyUSD, Status: "active"}
	if err := repositories.DB.Create(&wallet).Error; err != nil {
		log.Fatal("Failed to create admin wallet:", err)
	}
	admin.WalletID = &wallet.ID
	if err := repositories.DB.Save(&admin).Error; err != nil {
		log.Fatal("Failed to link admin wallet:", err)
	}

	log.Println("✅ Admin account created successfully!")
}
