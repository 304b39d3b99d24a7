package database

import (
	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.Setting{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
}

// SeedCatalog inserts a starter menu when the catalog is empty, so a
// freshly installed kiosk has something to display
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Catalog already seeded")
		return nil
	}

	log.Info("Catalog is empty, seeding starter menu")
	products := []models.Product{
		{Name: "CLASSIC", Price: 1500, Type: models.ProductTypeDish},
		{Name: "DOUBLE CHEESE", Price: 2000, Type: models.ProductTypeDish},
		{Name: "VEGGIE", Price: 1300, Type: models.ProductTypeDish},
		{Name: "KETCHUP", Price: 0, Type: models.ProductTypeSauce},
		{Name: "SPICY", Price: 0, Type: models.ProductTypeSauce},
		{Name: "MAYO", Price: 0, Type: models.ProductTypeSauce},
		{Name: "CHEESE", Price: 200, Type: models.ProductTypeGarniture},
		{Name: "BACON", Price: 300, Type: models.ProductTypeGarniture},
		{Name: "EGG", Price: 250, Type: models.ProductTypeGarniture},
	}
	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}
	log.Info("Catalog seeded successfully")
	return nil
}
