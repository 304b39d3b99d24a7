package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ninjascorp/gin-kiosk-api/internal/services"
)

// SettingsController handles HTTP requests for persisted configuration
type SettingsController interface {
	// GetSetting retrieves one setting by key
	GetSetting(c *gin.Context)
	// SetSetting upserts one setting
	SetSetting(c *gin.Context)
	// DailyColor returns the accent color for the current day
	DailyColor(c *gin.Context)
}

type settingsController struct {
	service services.SettingsService
}

// NewSettingsController creates a new instance of SettingsController
func NewSettingsController(service services.SettingsService) SettingsController {
	return &settingsController{service: service}
}

// GetSetting godoc
// @Summary Get a setting
// @Description Retrieve a configuration value (logo URL, QR code URL, ...)
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} models.Setting
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/settings/{key} [get]
func (sc *settingsController) GetSetting(ctx *gin.Context) {
	key := ctx.Param("key")

	value, found, err := sc.service.Get(key)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve setting"})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// SetSetting godoc
// @Summary Set a setting
// @Description Write a configuration value, replacing any previous one
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param setting body object{value=string} true "Setting value"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/settings/{key} [put]
func (sc *settingsController) SetSetting(ctx *gin.Context) {
	key := ctx.Param("key")

	var req struct {
		Value string `json:"value"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := sc.service.Set(key, req.Value); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// DailyColor godoc
// @Summary Daily accent color
// @Description Get the UI accent color for today; stable within a day, re-picked at rollover
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/daily-color [get]
func (sc *settingsController) DailyColor(ctx *gin.Context) {
	color, err := sc.service.DailyColor()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily color"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"color": color})
}
