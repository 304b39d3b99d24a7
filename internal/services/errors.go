package services

import "errors"

// Validation errors are rejected at the store boundary so the persisted
// catalog and cart can never hold blank names or negative amounts.
// Storage-engine failures are returned as-is from gorm so callers can tell
// "empty" apart from "failed".
var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidType     = errors.New("unknown product type")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativeTotal   = errors.New("total must not be negative")
	ErrEmptyCart       = errors.New("cart is empty")
)

// IsValidation reports whether err is one of the store validation errors
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrEmptyName),
		errors.Is(err, ErrNegativePrice),
		errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrNegativeTotal):
		return true
	}
	return false
}
