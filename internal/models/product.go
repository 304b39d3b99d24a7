package models

// ProductType partitions the catalog: dishes are the carousel entries,
// sauces and garnitures are the extras offered on top of a dish.
type ProductType string

const (
	ProductTypeDish      ProductType = "dish"
	ProductTypeSauce     ProductType = "sauce"
	ProductTypeGarniture ProductType = "garniture"
)

// Valid reports whether t is one of the known catalog types
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeDish, ProductTypeSauce, ProductTypeGarniture:
		return true
	}
	return false
}

// Product represents a catalog entry (dish, sauce or garniture)
// Prices are whole currency units; sauces conventionally carry price 0
type Product struct {
	ID    int         `gorm:"primaryKey" json:"id"`
	Name  string      `gorm:"not null" json:"name"`
	Price int         `gorm:"not null" json:"price"`
	Image string      `json:"image,omitempty"`
	Type  ProductType `gorm:"not null;index" json:"type"`
}

func (Product) TableName() string {
	return "products"
}
