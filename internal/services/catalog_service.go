package services

import (
	"strings"

	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"gorm.io/gorm"
)

// CatalogService provides CRUD over the product catalog
type CatalogService interface {
	// ListByType retrieves all products of the given type, in insertion order.
	// An unknown type yields an empty slice, not an error.
	ListByType(productType models.ProductType) ([]models.Product, error)
	// Create inserts a new catalog entry and returns it with its assigned id
	Create(name string, price int, image string, productType models.ProductType) (models.Product, error)
	// Update replaces name, price and image of an existing product.
	// The type is fixed at creation. Updating a missing id is a no-op.
	Update(id int, name string, price int, image string) error
	// Delete removes a product and any live cart lines referencing it.
	// Committed orders keep their denormalized snapshots.
	Delete(id int) error
}

type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) ListByType(productType models.ProductType) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.Where("type = ?", productType).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *catalogService) Create(name string, price int, image string, productType models.ProductType) (models.Product, error) {
	if err := validateProduct(name, price); err != nil {
		return models.Product{}, err
	}
	if !productType.Valid() {
		return models.Product{}, ErrInvalidType
	}

	product := models.Product{
		Name:  strings.TrimSpace(name),
		Price: price,
		Image: image,
		Type:  productType,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *catalogService) Update(id int, name string, price int, image string) error {
	if err := validateProduct(name, price); err != nil {
		return err
	}

	// A missing id leaves RowsAffected at 0, which is deliberately not an
	// error: the admin surface re-reads the list after every mutation.
	return s.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  strings.TrimSpace(name),
		"price": price,
		"image": image,
	}).Error
}

func (s *catalogService) Delete(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Product{}, id).Error; err != nil {
			return err
		}
		// Cascade-remove live cart lines so a deleted product can never
		// surface in a checkout total.
		return tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error
	})
}

func validateProduct(name string, price int) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if price < 0 {
		return ErrNegativePrice
	}
	return nil
}
