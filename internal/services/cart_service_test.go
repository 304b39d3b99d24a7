package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddAndTotal(t *testing.T) {
	db := setupTestDB(t)
	cart := NewCartService(db)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 0, total, "empty cart totals 0, not an error")

	_, err = cart.Add(1, "CLASSIC", 2, 3400, `{"sauces":[],"garnitures":[]}`)
	require.NoError(t, err)
	_, err = cart.Add(2, "VEGGIE", 1, 1300, "")
	require.NoError(t, err)

	total, err = cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 4700, total)
}

func TestCartAddNeverMergesLines(t *testing.T) {
	db := setupTestDB(t)
	cart := NewCartService(db)

	// Adding the same configuration twice yields two rows, not a
	// quantity bump
	first, err := cart.Add(1, "CLASSIC", 2, 3000, "")
	require.NoError(t, err)
	second, err := cart.Add(1, "CLASSIC", 2, 3000, "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	items, err := cart.List()
	require.NoError(t, err)
	assert.Len(t, items, 2)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 6000, total)
}

func TestCartAddValidation(t *testing.T) {
	db := setupTestDB(t)
	cart := NewCartService(db)

	testCases := []struct {
		name     string
		itemName string
		quantity int
		total    int
		expected error
	}{
		{"blank name", "  ", 1, 100, ErrEmptyName},
		{"zero quantity", "CLASSIC", 0, 100, ErrInvalidQuantity},
		{"negative quantity", "CLASSIC", -2, 100, ErrInvalidQuantity},
		{"negative total", "CLASSIC", 1, -100, ErrNegativeTotal},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cart.Add(1, tt.itemName, tt.quantity, tt.total, "")
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCartRemove(t *testing.T) {
	db := setupTestDB(t)
	cart := NewCartService(db)

	line, err := cart.Add(1, "CLASSIC", 1, 1500, "")
	require.NoError(t, err)
	_, err = cart.Add(2, "VEGGIE", 1, 1300, "")
	require.NoError(t, err)

	require.NoError(t, cart.Remove(line.ID))

	items, err := cart.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "VEGGIE", items[0].Name)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 1300, total)

	// Removing a missing id is a no-op
	assert.NoError(t, cart.Remove(9999))
}

func TestCartClear(t *testing.T) {
	db := setupTestDB(t)
	cart := NewCartService(db)

	_, err := cart.Add(1, "CLASSIC", 1, 1500, "")
	require.NoError(t, err)
	_, err = cart.Add(2, "VEGGIE", 1, 1300, "")
	require.NoError(t, err)

	require.NoError(t, cart.Clear())

	items, err := cart.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	// Clearing an already empty cart is fine
	assert.NoError(t, cart.Clear())
}
