package services

import (
	"testing"

	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.Setting{},
	)
	require.NoError(t, err)

	return db
}

func TestCatalogCreateAndListByType(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	dish, err := catalog.Create("CLASSIC", 1500, "", models.ProductTypeDish)
	require.NoError(t, err)
	assert.NotZero(t, dish.ID)

	_, err = catalog.Create("SPICY", 0, "", models.ProductTypeSauce)
	require.NoError(t, err)

	dishes, err := catalog.ListByType(models.ProductTypeDish)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "CLASSIC", dishes[0].Name)
	assert.Equal(t, 1500, dishes[0].Price)

	sauces, err := catalog.ListByType(models.ProductTypeSauce)
	require.NoError(t, err)
	assert.Len(t, sauces, 1)
}

func TestCatalogListUnknownTypeIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	_, err := catalog.Create("CLASSIC", 1500, "", models.ProductTypeDish)
	require.NoError(t, err)

	products, err := catalog.ListByType("dessert")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	testCases := []struct {
		name        string
		productName string
		price       int
		productType models.ProductType
		expected    error
	}{
		{"empty name", "", 100, models.ProductTypeDish, ErrEmptyName},
		{"blank name", "   ", 100, models.ProductTypeDish, ErrEmptyName},
		{"negative price", "CLASSIC", -1, models.ProductTypeDish, ErrNegativePrice},
		{"unknown type", "CLASSIC", 100, "dessert", ErrInvalidType},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Create(tt.productName, tt.price, "", tt.productType)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCatalogUpdate(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	dish, err := catalog.Create("CLASSIC", 1500, "", models.ProductTypeDish)
	require.NoError(t, err)

	err = catalog.Update(dish.ID, "CLASSIC XL", 1800, "classic-xl.png")
	require.NoError(t, err)

	dishes, err := catalog.ListByType(models.ProductTypeDish)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "CLASSIC XL", dishes[0].Name)
	assert.Equal(t, 1800, dishes[0].Price)
	assert.Equal(t, "classic-xl.png", dishes[0].Image)
	// Type is fixed at creation
	assert.Equal(t, models.ProductTypeDish, dishes[0].Type)
}

func TestCatalogUpdateMissingIDIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	err := catalog.Update(9999, "GHOST", 100, "")
	assert.NoError(t, err)
}

func TestCatalogUpdateValidation(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	dish, err := catalog.Create("CLASSIC", 1500, "", models.ProductTypeDish)
	require.NoError(t, err)

	assert.ErrorIs(t, catalog.Update(dish.ID, "", 1500, ""), ErrEmptyName)
	assert.ErrorIs(t, catalog.Update(dish.ID, "CLASSIC", -5, ""), ErrNegativePrice)
}

func TestCatalogDeleteMissingIDIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	assert.NoError(t, catalog.Delete(9999))
}

func TestCatalogDeleteCascadesToCart(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	cart := NewCartService(db)

	dish, err := catalog.Create("CLASSIC", 1500, "", models.ProductTypeDish)
	require.NoError(t, err)
	other, err := catalog.Create("VEGGIE", 1300, "", models.ProductTypeDish)
	require.NoError(t, err)

	_, err = cart.Add(dish.ID, dish.Name, 1, dish.Price, "")
	require.NoError(t, err)
	_, err = cart.Add(other.ID, other.Name, 1, other.Price, "")
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(dish.ID))

	// The deleted product's cart line is gone, the other survives
	items, err := cart.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, other.ID, items[0].ProductID)

	total, err := cart.Total()
	require.NoError(t, err)
	assert.Equal(t, 1300, total)
}
