package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"vendorhub/internal/handlers"
	"vendorhub/internal/middleware"
	"vendorhub/internal/models"
	"vendorhub/internal/repositories"
	"vendorhub/internal/services"
	"vendorhub/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SESSION_COOKIE", "vendor_session")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	sessionCookie := viper.GetString("SESSION_COOKIE")

	// --- Initialize RabbitMQ Client (optional) ---
	// Without a broker URL the rating service simply skips event publishing.
	var mqClient *rabbitmq.Client
	if rabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Initialize Repositories ---
	// Postgres when DATABASE_URL is set, in-memory stores otherwise.
	var (
		vendorRepo  repositories.VendorRepository
		productRepo repositories.ProductRepository
		ratingRepo  repositories.RatingRepository
	)
	if databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Vendor{}, &models.Product{}, &models.Rating{}); err != nil {
			log.Fatalf("Failed to auto-migrate database: %v", err)
		}
		vendorRepo = repositories.NewGORMVendorRepository(db)
		productRepo = repositories.NewGORMProductRepository(db)
		ratingRepo = repositories.NewGORMRatingRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory repositories")
		vendors := repositories.NewMockVendorRepository()
		products := repositories.NewMockProductRepository()
		ratings := repositories.NewMockRatingRepository(vendors)
		vendors.Cascade(products, ratings)
		vendorRepo = vendors
		productRepo = products
		ratingRepo = ratings
	}

	// --- Initialize Services ---
	authService := services.NewAuthService(vendorRepo)
	vendorService := services.NewVendorService(vendorRepo)
	productService := services.NewProductService(productRepo)
	ratingService := services.NewRatingService(ratingRepo, vendorRepo, mqClient)

	// --- Sessions ---
	sessionStore := middleware.NewSessionStore(sessionCookie)
	requireVendor := middleware.RequireVendor(sessionStore)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService, sessionStore)
	vendorHandler := handlers.NewVendorHandler(vendorService, productService, ratingService)
	productHandler := handlers.NewProductHandler(productService)
	ratingHandler := handlers.NewRatingHandler(ratingService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	vendorHandler.RegisterRoutes(api, requireVendor)
	productHandler.RegisterRoutes(api, requireVendor)
	ratingHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Logs incoming rating events; a real deployment would fan these out to
	// vendor notification channels.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for rating events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received rating event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeRatingEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
