package services

import (
	"encoding/json"
	"time"

	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"gorm.io/gorm"
)

// Display formats used on tickets and in the order history
const (
	orderDateFormat = "02/01/2006"
	orderTimeFormat = "15:04"
)

// OrderService is the append-only ledger of committed orders
type OrderService interface {
	// Commit appends one order built from an already-serialized items
	// snapshot. Duplicate content is allowed; only the id is unique.
	Commit(items string, total int, date string, timeOfDay string) (models.Order, error)
	// ListAll retrieves every order, most recent first
	ListAll() ([]models.Order, error)
	// Checkout converts the current cart into an order and empties the
	// cart in a single transaction. A failure anywhere rolls back every
	// effect, so an order can never exist without its cart-clear and a
	// crash mid-checkout cannot duplicate or lose the order.
	Checkout() (models.Order, error)
}

type orderService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db, now: time.Now}
}

func (s *orderService) Commit(items string, total int, date string, timeOfDay string) (models.Order, error) {
	if total < 0 {
		return models.Order{}, ErrNegativeTotal
	}

	order := models.Order{
		Date:  date,
		Time:  timeOfDay,
		Items: items,
		Total: total,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListAll() ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.db.Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) Checkout() (models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		items := []models.CartItem{}
		if err := tx.Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		lines := make([]models.OrderLine, 0, len(items))
		total := 0
		for _, item := range items {
			extras := json.RawMessage(item.Extras)
			if item.Extras == "" {
				extras = json.RawMessage("{}")
			}
			lines = append(lines, models.OrderLine{
				ProductID:  item.ProductID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				TotalPrice: item.TotalPrice,
				Extras:     extras,
			})
			total += item.TotalPrice
		}

		snapshot, err := json.Marshal(lines)
		if err != nil {
			return err
		}

		now := s.now()
		order = models.Order{
			Date:  now.Format(orderDateFormat),
			Time:  now.Format(orderTimeFormat),
			Items: string(snapshot),
			Total: total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}
