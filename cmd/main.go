package main

import (
	"context"
	"fmt"
	"log"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/joho/godotenv"

	"rentmart/internal/caching"
	"rentmart/internal/config"
	"rentmart/internal/handlers"
	"rentmart/internal/jobs/background"
	"rentmart/internal/middleware"
	"rentmart/internal/repositories"
	"rentmart/internal/services"
	"rentmart/pkg/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	minioSvc, err := services.NewMinioService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	if err := minioSvc.EnsureBucketExists(context.Background(), cfg.MinioBucket); err != nil {
		log.Printf("WARN: could not ensure bucket %s exists: %v", cfg.MinioBucket, err)
	}

	// Repositories
	productRepo := repositories.NewProductRepo(pool)
	colorRepo := repositories.NewProductColorRepo(pool)
	bundleRepo := repositories.NewBundleRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	orderItemRepo := repositories.NewOrderItemRepo(pool)
	salonRepo := repositories.NewSalonEventRepo(pool)
	venueRepo := repositories.NewVenueRepo(pool)

	// Services
	authSvc := services.NewAuthService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPassword, 12*time.Hour)
	bundleSvc := services.NewBundleService(bundleRepo, productRepo, cacheSvc)
	productSvc := services.NewProductService(productRepo, bundleRepo, cacheSvc)
	inventorySvc := services.NewInventoryService(productRepo, colorRepo, cacheSvc)
	availabilitySvc := services.NewAvailabilityService(productRepo, colorRepo, bundleRepo, orderRepo, orderItemRepo, cacheSvc)
	orderSvc := services.NewOrderService(orderRepo, orderItemRepo, bundleSvc, cacheSvc)
	salonSvc := services.NewSalonService(salonRepo)
	venueSvc := services.NewVenueService(venueRepo)
	statsSvc := services.NewStatsService(orderRepo, orderItemRepo, salonRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc)
	productHandlers := handlers.NewProductHandlers(productSvc, bundleSvc)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	availabilityHandlers := handlers.NewAvailabilityHandlers(availabilitySvc)
	salonHandlers := handlers.NewSalonHandlers(salonSvc)
	venueHandlers := handlers.NewVenueHandlers(venueSvc)
	statsHandlers := handlers.NewStatsHandlers(statsSvc)
	noteHandlers := handlers.NewNoteHandlers(orderSvc, salonSvc, minioSvc, cfg.MinioBucket, cfg.CompanyName, cfg.CompanyTagline, cfg.CompanyContact)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/health", healthHandlers.HealthCheck)

	v1 := e.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandlers.Login)

	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(cfg.JWTSecret)))

	// Products and bundles
	protected.GET("/products", productHandlers.ListProducts)
	protected.POST("/products", productHandlers.CreateProduct)
	protected.GET("/products/:id", productHandlers.GetProduct)
	protected.PUT("/products/:id", productHandlers.UpdateProduct)
	protected.DELETE("/products/:id", productHandlers.DeleteProduct)
	protected.GET("/products/:id/sizes", productHandlers.ListSizes)
	protected.GET("/products/:id/description", productHandlers.DescribeBundle)
	protected.GET("/products/:id/components", productHandlers.GetBundleComponents)
	protected.PUT("/products/:id/components", productHandlers.SetBundleComponents)
	protected.PUT("/products/prices", productHandlers.BulkUpdatePrices)

	// Inventory
	protected.GET("/inventory/total", inventoryHandlers.TotalPieceCount)
	protected.PUT("/inventory/:productId/stock", inventoryHandlers.SetStock)
	protected.POST("/inventory/:productId/adjust", inventoryHandlers.AdjustStock)
	protected.GET("/inventory/:productId/colors", inventoryHandlers.ListColors)
	protected.POST("/inventory/:productId/colors", inventoryHandlers.AddColor)
	protected.PUT("/inventory/colors/:colorId", inventoryHandlers.SetColorStock)
	protected.DELETE("/inventory/colors/:colorId", inventoryHandlers.RemoveColor)

	// Orders
	protected.GET("/orders", orderHandlers.ListOrders)
	protected.POST("/orders", orderHandlers.CreateOrder)
	protected.GET("/orders/date/:date", orderHandlers.ListOrdersForDate)
	protected.GET("/orders/:id", orderHandlers.GetOrder)
	protected.DELETE("/orders/:id", orderHandlers.DeleteOrder)
	protected.POST("/orders/:id/deliver", orderHandlers.MarkDelivered)
	protected.POST("/orders/:id/pickup", orderHandlers.MarkPickedUp)
	protected.POST("/orders/:id/cancel", orderHandlers.CancelOrder)
	protected.PUT("/orders/:id/paid", orderHandlers.SetPaid)
	protected.GET("/orders/:id/note", noteHandlers.GenerateOrderNote)
	protected.GET("/orders/:id/note-url", noteHandlers.GetNoteURL)

	// Availability
	protected.GET("/availability", availabilityHandlers.GetAvailability)

	// Salon bookings
	protected.GET("/salon/events", salonHandlers.ListEvents)
	protected.POST("/salon/events", salonHandlers.CreateEvent)
	protected.GET("/salon/events/date/:date", salonHandlers.ListEventsForDate)
	protected.GET("/salon/events/:id", salonHandlers.GetEvent)
	protected.PUT("/salon/events/:id", salonHandlers.UpdateEvent)
	protected.DELETE("/salon/events/:id", salonHandlers.DeleteEvent)
	protected.POST("/salon/events/:id/cancel", salonHandlers.CancelEvent)
	protected.POST("/salon/events/:id/complete", salonHandlers.CompleteEvent)
	protected.GET("/salon/events/:id/contract", noteHandlers.GenerateSalonContract)

	// Venues
	protected.GET("/venues", venueHandlers.ListVenues)
	protected.POST("/venues", venueHandlers.CreateVenue)
	protected.DELETE("/venues/:id", venueHandlers.DeleteVenue)

	// Statistics
	protected.GET("/stats", statsHandlers.GetSummary)

	scheduler := background.NewJobScheduler(availabilitySvc, orderRepo)
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop scheduler: %v", err)
		}
	}()

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
