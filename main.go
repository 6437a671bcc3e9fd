package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ishita1406/groceryApp/internal/config"
	"github.com/Ishita1406/groceryApp/internal/handlers"
	"github.com/Ishita1406/groceryApp/internal/middleware"
	"github.com/Ishita1406/groceryApp/internal/models"
	"github.com/Ishita1406/groceryApp/internal/repositories"
	"github.com/Ishita1406/groceryApp/internal/services"
	"github.com/Ishita1406/groceryApp/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Persistence ---
	var productRepo repositories.ProductRepository
	var userRepo repositories.UserRepository

	if cfg.DBDriver == "memory" {
		productRepo = repositories.NewMemoryProductRepository()
		userRepo = repositories.NewMemoryUserRepository()
	} else {
		db, err := openDatabase(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Product{}, &models.User{}); err != nil {
			log.Fatalf("Failed to auto-migrate database: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
		userRepo = repositories.NewGORMUserRepository(db)
	}

	// --- Catalog events (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		var err error
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		log.Println("Starting RabbitMQ consumer for catalog events...")
		if err := mqClient.ConsumeCatalogEvents(func(msg amqp.Delivery) error {
			log.Printf("Received catalog event (tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, mqClient)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	authHandler := handlers.NewAuthHandler(authService)

	if cfg.SeedProducts {
		seedProducts(productRepo)
	}

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	// Mutating product routes require a valid token; reads are public.
	productHandler.RegisterRoutes(api, middleware.AuthRequired(authService))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
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

// openDatabase opens the configured GORM database. TranslateError maps
// driver unique-violations onto gorm.ErrDuplicatedKey, which the user
// repository relies on.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DatabaseDSN)
	default:
		dial = sqlite.Open(cfg.DatabaseDSN)
	}
	return gorm.Open(dial, &gorm.Config{TranslateError: true})
}

// seedProducts fills an empty store with the starter grocery catalog so a
// fresh instance renders a non-empty listing. Skipped when any product
// already exists.
func seedProducts(repo repositories.ProductRepository) {
	_, total, err := repo.List(repositories.ProductFilter{}, 1, 1)
	if err != nil {
		log.Printf("Error checking product count before seeding: %v", err)
		return
	}
	if total > 0 {
		return
	}

	products := []models.Product{
		{Name: "Red Apple", Price: 40, Category: "Fruits", Stock: 50, ImageURL: "https://images.unsplash.com/photo-1695028102094-9b1396f17304", Description: "Fresh red apples"},
		{Name: "Banana Bunch", Price: 30, Category: "Fruits", Stock: 100, ImageURL: "https://plus.unsplash.com/premium_photo-1724250081106-4bb1be9bf950"},
		{Name: "Spinach Pack", Price: 20, Category: "Vegetables", Stock: 70, ImageURL: "https://images.unsplash.com/photo-1622127573737-2921057fdf62"},
		{Name: "Milk 1L", Price: 50, Category: "Dairy", Stock: 200, ImageURL: "https://images.unsplash.com/photo-1576186726115-4d51596775d1"},
		{Name: "Paneer 200g", Price: 120, Category: "Dairy", Stock: 40, ImageURL: "https://plus.unsplash.com/premium_photo-1695044277238-6eac8969fb77"},
		{Name: "Carrot 1kg", Price: 35, Category: "Vegetables", Stock: 80, ImageURL: "https://images.unsplash.com/photo-1582515073490-39981397c445"},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
		}
	}
}
