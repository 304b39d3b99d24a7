package models

import "encoding/json"

// Order is one committed checkout. Rows are append-only: no update or
// delete operation exists anywhere in the codebase. Date and Time are
// localized display strings captured at commit time; Items holds the
// serialized cart-line snapshots.
type Order struct {
	ID    int    `gorm:"primaryKey" json:"id"`
	Date  string `gorm:"not null" json:"date"`
	Time  string `gorm:"not null" json:"time"`
	Items string `gorm:"not null" json:"items"`
	Total int    `gorm:"not null" json:"total"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderLine is the shape of one entry inside Order.Items. Every CartItem
// field present at commit time round-trips losslessly through it, which is
// the ledger's only obligation to the CSV/ticket collaborators.
type OrderLine struct {
	ProductID  int             `json:"productId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	TotalPrice int             `json:"totalPrice"`
	Extras     json.RawMessage `json:"extras"`
}
