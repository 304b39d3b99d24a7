package models

// CartItem is one line of the in-progress order. Name and TotalPrice are
// denormalized snapshots so the line survives deletion of the product it
// references. TotalPrice is (unit price + selected garniture prices) ×
// quantity, computed by the caller and stored verbatim.
type CartItem struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	ProductID  int    `json:"productId"`
	Name       string `gorm:"not null" json:"name"`
	Quantity   int    `gorm:"not null" json:"quantity"`
	TotalPrice int    `gorm:"not null" json:"totalPrice"`
	Extras     string `json:"extras"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// ExtraRef is a caller-side reference to a sauce or garniture attached
// to a cart line
type ExtraRef struct {
	ID    int    `json:"id,omitempty"`
	Name  string `json:"name"`
	Price int    `json:"price,omitempty"`
}

// Extras is the structure serialized into CartItem.Extras. The store treats
// the blob as opaque; this type exists for callers and tests.
type Extras struct {
	Sauces     []ExtraRef `json:"sauces"`
	Garnitures []ExtraRef `json:"garnitures"`
}
