package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"markethub/internal/handlers"
	"markethub/internal/models"
	"markethub/internal/repositories"
	"markethub/internal/services"
	"markethub/pkg/catalogfile"
	"markethub/pkg/rabbitmq"
)

// App bundles the wired application so main and tests share one setup.
type App struct {
	Fiber     *fiber.App
	Session   *services.SessionService
	Cart      *services.CartService
	Inventory *services.SellerInventoryService
	Catalog   *services.CatalogService
	MQ        *rabbitmq.Client
}

// NewApp builds the application from configuration: catalog backend
// (in-memory, sqlite or postgres), optional RabbitMQ client, the session
// state models and all HTTP routes.
func NewApp() (*App, error) {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publishing
	viper.SetDefault("DATABASE_DSN", "") // empty keeps the catalog in memory
	viper.SetDefault("CATALOG_FILE", "") // empty uses the built-in seed
	viper.SetDefault("JWT_SECRET", "markethub_dev_secret")
	viper.AutomaticEnv()

	// --- Catalog seed ---
	seed := repositories.DefaultCatalog()
	if path := viper.GetString("CATALOG_FILE"); path != "" {
		loaded, err := catalogfile.Load(path)
		if err != nil {
			return nil, err
		}
		seed = loaded
		log.Printf("Loaded %d catalog products from %s", len(seed), path)
	}

	// --- Catalog repository ---
	var catalogRepo repositories.CatalogRepository
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		var dialector gorm.Dialector
		if strings.Contains(dsn, "host=") {
			dialector = postgres.Open(dsn)
		} else {
			dialector = sqlite.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(&models.Product{}); err != nil {
			return nil, err
		}
		gormRepo := repositories.NewGORMCatalogRepository(db)
		if err := gormRepo.Seed(seed); err != nil {
			return nil, err
		}
		catalogRepo = gormRepo
	} else {
		catalogRepo = repositories.NewMemoryCatalogRepository(seed)
	}
	reviewRepo := repositories.NewMemoryReviewRepository(repositories.DefaultReviews())

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			return nil, err
		}
		mqClient = client
	} else {
		log.Println("RABBITMQ_URL not set, inventory events disabled")
	}

	// --- Services ---
	catalogService := services.NewCatalogService(catalogRepo, reviewRepo)
	cartService := services.NewCartService()
	inventoryService := services.NewSellerInventoryService(mqClient)
	sessionService := services.NewSessionService(viper.GetString("JWT_SECRET"))

	// --- Handlers ---
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	sellerHandler := handlers.NewSellerHandler(inventoryService, sessionService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	sellerHandler.RegisterRoutes(apiV1)
	sessionHandler.RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"session": sessionService.ID(),
		})
	})

	return &App{
		Fiber:     app,
		Session:   sessionService,
		Cart:      cartService,
		Inventory: inventoryService,
		Catalog:   catalogService,
		MQ:        mqClient,
	}, nil
}

func main() {
	application, err := NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	if application.MQ != nil {
		defer application.MQ.Close()

		// Consume our own inventory events; in a larger deployment a
		// separate worker (search indexer, moderation) would do this.
		go func() {
			log.Println("Starting RabbitMQ consumer for inventory events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received inventory event %s: %s", msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := application.MQ.ConsumeInventoryEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	appPort := viper.GetString("APP_PORT")
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Fiber.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := application.Fiber.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
