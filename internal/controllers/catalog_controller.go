package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"github.com/ninjascorp/gin-kiosk-api/internal/services"
)

// CatalogController handles HTTP requests for the product catalog
type CatalogController interface {
	// ListProducts retrieves products filtered by type
	ListProducts(c *gin.Context)
	// CreateProduct adds a new catalog entry
	CreateProduct(c *gin.Context)
	// UpdateProduct edits an existing catalog entry
	UpdateProduct(c *gin.Context)
	// DeleteProduct removes a catalog entry
	DeleteProduct(c *gin.Context)
}

type catalogController struct {
	service services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(service services.CatalogService) CatalogController {
	return &catalogController{service: service}
}

type productRequest struct {
	Name  string `json:"name" binding:"required"`
	Price *int   `json:"price" binding:"required"`
	Image string `json:"image"`
}

// ListProducts godoc
// @Summary List products by type
// @Description Get all catalog entries of one type (dish, sauce or garniture)
// @Tags catalog
// @Accept json
// @Produce json
// @Param type query string true "Product type" Enums(dish, sauce, garniture)
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/products [get]
func (cc *catalogController) ListProducts(ctx *gin.Context) {
	productType := models.ProductType(ctx.Query("type"))

	products, err := cc.service.ListByType(productType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// CreateProduct godoc
// @Summary Create a product
// @Description Add a dish, sauce or garniture to the catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param type query string true "Product type" Enums(dish, sauce, garniture)
// @Param product body productRequest true "Product fields"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/products [post]
func (cc *catalogController) CreateProduct(ctx *gin.Context) {
	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	productType := models.ProductType(ctx.Query("type"))

	product, err := cc.service.Create(req.Name, *req.Price, req.Image, productType)
	if err != nil {
		if services.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace name, price and image of a catalog entry. The type is fixed at creation.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body productRequest true "Product fields"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/products/{id} [put]
func (cc *catalogController) UpdateProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var req productRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := cc.service.Update(id, req.Name, *req.Price, req.Image); err != nil {
		if services.IsValidation(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Remove a catalog entry and any live cart lines referencing it
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/products/{id} [delete]
func (cc *catalogController) DeleteProduct(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	if err := cc.service.Delete(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
