package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(value string) func() time.Time {
	parsed, err := time.Parse("02/01/2006 15:04", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed }
}

func TestCheckoutScenario(t *testing.T) {
	// Classic dish, quantity 2, cheese garniture: (1500+200)*2 = 3400
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	cart := NewCartService(db)
	orders := &orderService{db: db, now: fixedClock("15/03/2026 12:30")}

	dish, err := catalog.Create("Classic", 1500, "", models.ProductTypeDish)
	require.NoError(t, err)

	extras, err := json.Marshal(models.Extras{
		Sauces:     []models.ExtraRef{{Name: "Spicy"}},
		Garnitures: []models.ExtraRef{{Name: "Cheese", Price: 200}},
	})
	require.NoError(t, err)

	_, err = cart.Add(dish.ID, dish.Name, 2, (1500+200)*2, string(extras))
	require.NoError(t, err)

	total, err := cart.Total()
	require.NoError(t, err)
	require.Equal(t, 3400, total)

	order, err := orders.Checkout()
	require.NoError(t, err)
	assert.Equal(t, 3400, order.Total)
	assert.Equal(t, "15/03/2026", order.Date)
	assert.Equal(t, "12:30", order.Time)

	// Cart is empty after checkout
	items, err := cart.List()
	require.NoError(t, err)
	assert.Empty(t, items)

	history, err := orders.ListAll()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 3400, history[0].Total)

	// The snapshot round-trips losslessly, extras included
	var lines []models.OrderLine
	require.NoError(t, json.Unmarshal([]byte(history[0].Items), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, dish.ID, lines[0].ProductID)
	assert.Equal(t, "Classic", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 3400, lines[0].TotalPrice)

	var restored models.Extras
	require.NoError(t, json.Unmarshal(lines[0].Extras, &restored))
	require.Len(t, restored.Garnitures, 1)
	assert.Equal(t, "Cheese", restored.Garnitures[0].Name)
	assert.Equal(t, 200, restored.Garnitures[0].Price)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	_, err := orders.Checkout()
	assert.ErrorIs(t, err, ErrEmptyCart)

	history, err := orders.ListAll()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCheckoutRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	cart := NewCartService(db)
	orders := NewOrderService(db)

	_, err := cart.Add(1, "CLASSIC", 1, 1500, "")
	require.NoError(t, err)
	// A corrupt extras blob makes the snapshot marshal fail after the
	// cart has been read, mid-transaction
	_, err = cart.Add(2, "VEGGIE", 1, 1300, "{corrupt")
	require.NoError(t, err)

	_, err = orders.Checkout()
	require.Error(t, err)

	// Neither effect is visible: the cart is untouched and no order
	// was recorded
	items, listErr := cart.List()
	require.NoError(t, listErr)
	assert.Len(t, items, 2)

	total, totalErr := cart.Total()
	require.NoError(t, totalErr)
	assert.Equal(t, 2800, total)

	history, histErr := orders.ListAll()
	require.NoError(t, histErr)
	assert.Empty(t, history)
}

func TestSnapshotSurvivesProductDeletion(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	cart := NewCartService(db)
	orders := NewOrderService(db)

	dish, err := catalog.Create("CLASSIC", 1500, "", models.ProductTypeDish)
	require.NoError(t, err)

	_, err = cart.Add(dish.ID, dish.Name, 1, dish.Price, "")
	require.NoError(t, err)

	order, err := orders.Checkout()
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(dish.ID))

	history, err := orders.ListAll()
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, order.Items, history[0].Items)

	var lines []models.OrderLine
	require.NoError(t, json.Unmarshal([]byte(history[0].Items), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "CLASSIC", lines[0].Name)
	assert.Equal(t, 1500, lines[0].TotalPrice)
}

func TestCommitAllowsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	first, err := orders.Commit("[]", 1000, "15/03/2026", "12:00")
	require.NoError(t, err)
	second, err := orders.Commit("[]", 1000, "15/03/2026", "12:00")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = orders.Commit("[]", -1, "15/03/2026", "12:00")
	assert.ErrorIs(t, err, ErrNegativeTotal)
}

func TestListAllMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)

	for _, total := range []int{100, 200, 300} {
		_, err := orders.Commit("[]", total, "15/03/2026", "12:00")
		require.NoError(t, err)
	}

	history, err := orders.ListAll()
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 300, history[0].Total)
	assert.Equal(t, 200, history[1].Total)
	assert.Equal(t, 100, history[2].Total)
}
