package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ninjascorp/gin-kiosk-api/internal/services"
)

// CartController handles HTTP requests for the in-progress order
type CartController interface {
	// AddItem appends a line to the cart
	AddItem(c *gin.Context)
	// GetCart retrieves the cart lines and their grand total
	GetCart(c *gin.Context)
	// RemoveItem deletes one cart line
	RemoveItem(c *gin.Context)
	// ClearCart empties the cart (explicit cancel)
	ClearCart(c *gin.Context)
}

type cartController struct {
	service services.CartService
}

// NewCartController creates a new instance of CartController
func NewCartController(service services.CartService) CartController {
	return &cartController{service: service}
}

type cartItemRequest struct {
	ProductID  int    `json:"productId"`
	Name       string `json:"name" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required"`
	TotalPrice *int   `json:"totalPrice" binding:"required"`
	Extras     string `json:"extras"`
}

// AddItem godoc
// @Summary Add a cart line
// @Description Append a configured product to the cart. Identical lines are kept separate, never merged.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body cartItemRequest true "Cart line"
// @Success 201 {object} models.CartItem
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/cart/items [post]
func (cc *cartController) AddItem(ctx *gin.Context) {
	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	item, err := cc.service.Add(req.ProductID, req.Name, req.Quantity, *req.TotalPrice, req.Extras)
	if err != nil {
		if services.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// GetCart godoc
// @Summary Get the cart
// @Description Retrieve all cart lines and the grand total
// @Tags cart
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/v1/cart [get]
func (cc *cartController) GetCart(ctx *gin.Context) {
	items, err := cc.service.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	total, err := cc.service.Total()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cart total"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// RemoveItem godoc
// @Summary Remove a cart line
// @Description Delete one cart line; removing a missing id is a no-op
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart line ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/cart/items/{id} [delete]
func (cc *cartController) RemoveItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart line ID format"})
		return
	}

	if err := cc.service.Remove(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart line"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// ClearCart godoc
// @Summary Clear the cart
// @Description Remove all cart lines (customer cancelled the order)
// @Tags cart
// @Accept json
// @Produce json
// @Success 204
// @Failure 500 {object} map[string]string
// @Router /api/v1/cart [delete]
func (cc *cartController) ClearCart(ctx *gin.Context) {
	if err := cc.service.Clear(); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
