package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"github.com/ninjascorp/gin-kiosk-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupKioskRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}))

	cartController := NewCartController(services.NewCartService(db))
	orderController := NewOrderController(services.NewOrderService(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/cart/items", cartController.AddItem)
	router.GET("/cart", cartController.GetCart)
	router.POST("/checkout", orderController.Checkout)
	return router, db
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	router, db := setupKioskRouter(t)

	total := 3400
	w := postJSON(router, "/cart/items", map[string]interface{}{
		"productId":  1,
		"name":       "CLASSIC",
		"quantity":   2,
		"totalPrice": total,
		"extras":     `{"sauces":[{"name":"Spicy"}],"garnitures":[{"name":"Cheese","price":200}]}`,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest("GET", "/cart", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var cartResponse struct {
		Items []models.CartItem `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResponse))
	assert.Len(t, cartResponse.Items, 1)
	assert.Equal(t, total, cartResponse.Total)

	w = postJSON(router, "/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, total, order.Total)

	var remaining int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestCheckoutEmptyCartIsConflict(t *testing.T) {
	router, _ := setupKioskRouter(t)

	// An empty cart is a distinct state, not a storage failure
	w := postJSON(router, "/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddItemValidationOverHTTP(t *testing.T) {
	router, _ := setupKioskRouter(t)

	w := postJSON(router, "/cart/items", map[string]interface{}{
		"productId":  1,
		"name":       "CLASSIC",
		"quantity":   0,
		"totalPrice": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
