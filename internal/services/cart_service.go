package services

import (
	"strings"

	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"gorm.io/gorm"
)

// CartService manages the single in-progress order of the kiosk.
// The cart is one flat table: no session or user scoping.
type CartService interface {
	// Add appends a new line and returns it with its assigned id.
	// Adding the same product twice produces two lines; lines are never
	// merged, so removal stays a per-line operation.
	Add(productID int, name string, quantity int, totalPrice int, extras string) (models.CartItem, error)
	// List retrieves all cart lines in storage order
	List() ([]models.CartItem, error)
	// Total sums totalPrice across all lines; an empty cart totals 0
	Total() (int, error)
	// Remove deletes one line; removing a missing id is a no-op
	Remove(id int) error
	// Clear empties the cart unconditionally
	Clear() error
}

type cartService struct {
	db *gorm.DB
}

// NewCartService creates a new instance of CartService
func NewCartService(db *gorm.DB) CartService {
	return &cartService{db: db}
}

func (s *cartService) Add(productID int, name string, quantity int, totalPrice int, extras string) (models.CartItem, error) {
	if strings.TrimSpace(name) == "" {
		return models.CartItem{}, ErrEmptyName
	}
	if quantity < 1 {
		return models.CartItem{}, ErrInvalidQuantity
	}
	if totalPrice < 0 {
		return models.CartItem{}, ErrNegativeTotal
	}

	item := models.CartItem{
		ProductID:  productID,
		Name:       name,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Extras:     extras,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

func (s *cartService) List() ([]models.CartItem, error) {
	items := []models.CartItem{}
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *cartService) Total() (int, error) {
	var total int
	err := s.db.Model(&models.CartItem{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *cartService) Remove(id int) error {
	return s.db.Delete(&models.CartItem{}, id).Error
}

func (s *cartService) Clear() error {
	return s.db.Where("1 = 1").Delete(&models.CartItem{}).Error
}
