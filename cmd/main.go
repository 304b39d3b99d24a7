package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/ninjascorp/gin-kiosk-api/docs" // Import generated docs
	"github.com/ninjascorp/gin-kiosk-api/internal/auth"
	"github.com/ninjascorp/gin-kiosk-api/internal/config"
	"github.com/ninjascorp/gin-kiosk-api/internal/controllers"
	"github.com/ninjascorp/gin-kiosk-api/internal/database"
	"github.com/ninjascorp/gin-kiosk-api/internal/middleware"
	"github.com/ninjascorp/gin-kiosk-api/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db                 *gorm.DB
	catalogController  controllers.CatalogController
	cartController     controllers.CartController
	orderController    controllers.OrderController
	settingsController controllers.SettingsController
	authController     *controllers.AuthController
	clientController   *controllers.ClientController
	oauthService       *auth.OAuthService
	configuration      *config.Config
)

// @title Kiosk POS API
// @version 1.0
// @description Order and cart store for a fast-food kiosk
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)
	defer database.Close(db)

	// Initialize services and controllers
	catalogController = controllers.NewCatalogController(services.NewCatalogService(db))
	cartController = controllers.NewCartController(services.NewCartService(db))
	orderController = controllers.NewOrderController(services.NewOrderService(db))
	settingsController = controllers.NewSettingsController(services.NewSettingsService(db))
	authController = controllers.NewAuthController(services.NewUserService(db), configuration.JWTSecret)
	clientController = controllers.NewClientController(services.NewClientService(db))
	oauthService = auth.NewOAuthService(db, configuration.JWTSecret)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the storage connection, migrates the schema and seeds
// the catalog. The handle is process-wide and lives until shutdown.
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))
	checkPanicErr(database.SeedCatalog(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/products", catalogController.ListProducts)
			publicApi.GET("/settings/:key", settingsController.GetSetting)
			publicApi.GET("/daily-color", settingsController.DailyColor)
		}

		// Kiosk order flow: cart mutation and checkout. The kiosk is a
		// single trusted device on a closed network; cart routes carry no
		// per-customer auth, matching the one-flat-cart data model.
		v1.POST("/cart/items", cartController.AddItem)
		v1.GET("/cart", cartController.GetCart)
		v1.DELETE("/cart/items/:id", cartController.RemoveItem)
		v1.DELETE("/cart", cartController.ClearCart)
		v1.POST("/checkout", orderController.Checkout)

		// Authentication routes
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}
		v1.POST("/oauth/token", oauthService.HandleToken)

		// Protected routes (requires a valid Bearer token)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.BearerAuth([]byte(configuration.JWTSecret)))
		{
			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			{
				adminApi.POST("/products", catalogController.CreateProduct)
				adminApi.PUT("/products/:id", catalogController.UpdateProduct)
				adminApi.DELETE("/products/:id", catalogController.DeleteProduct)

				adminApi.PUT("/settings/:key", settingsController.SetSetting)
				adminApi.GET("/orders", orderController.ListOrders)

				adminApi.POST("/clients", clientController.CreateClient)
				adminApi.GET("/clients", clientController.ListClients)
				adminApi.DELETE("/clients/:id", clientController.DeleteClient)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-kiosk-api",
	})
}
