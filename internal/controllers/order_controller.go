package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ninjascorp/gin-kiosk-api/internal/services"
)

// OrderController handles HTTP requests for checkout and the order ledger
type OrderController interface {
	// Checkout converts the current cart into a committed order
	Checkout(c *gin.Context)
	// ListOrders retrieves the full order history, most recent first
	ListOrders(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

// Checkout godoc
// @Summary Checkout
// @Description Commit the cart as an order and empty the cart, atomically. An empty cart is a 409, distinct from a storage failure.
// @Tags orders
// @Accept json
// @Produce json
// @Success 201 {object} models.Order
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/checkout [post]
func (oc *orderController) Checkout(ctx *gin.Context) {
	order, err := oc.service.Checkout()
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
			return
		}
		// The transaction rolled back: the cart is untouched and no order
		// was recorded, so the kiosk can simply retry.
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Could not complete order"})
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary List orders
// @Description Retrieve every committed order, most recent first. Consumed by the CSV/ticket collaborators.
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders [get]
func (oc *orderController) ListOrders(ctx *gin.Context) {
	orders, err := oc.service.ListAll()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	ctx.JSON(http.StatusOK, orders)
}
