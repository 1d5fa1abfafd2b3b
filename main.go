package main

import (
	"os"
	"os/signal"
	"syscall"

	"productos/internal/config"
	"productos/internal/database"
	"productos/internal/handlers"
	"productos/internal/logging"
	"productos/internal/models"
	"productos/internal/repositories"
	"productos/internal/server"
	"productos/internal/services"
	"productos/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(".env")
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := logging.Setup(cfg)

	// --- Initialize Repository ---
	productRepo, err := newProductRepository(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize product repository: %v", err)
	}
	if cfg.DatabaseSeed {
		seedProducts(productRepo, logger)
	}

	// --- Initialize RabbitMQ Client (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logger.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		if cfg.RabbitMQConsume {
			if err := mqClient.ConsumeProductEvents(rabbitmq.LogProductEvent); err != nil {
				logger.WithError(err).Error("Failed to start RabbitMQ consumer")
			}
		}
	} else {
		logger.Info("RABBITMQ_URL not set, product events are disabled")
	}

	// --- Initialize Service, Handler and App ---
	productService := services.NewProductService(productRepo, publisher)
	productHandler := handlers.NewProductHandler(productService)
	app := server.NewApp(cfg, logger, productHandler)

	// --- Start HTTP Server ---
	logger.Infof("REST API listening on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logger.WithError(err).Error("Error during Fiber shutdown")
	}
	logger.Info("Server gracefully stopped")
}

// newProductRepository selects the product store from DATABASE_DRIVER.
func newProductRepository(cfg *config.Config) (repositories.ProductRepository, error) {
	if cfg.DatabaseDriver == config.DriverMemory {
		return repositories.NewMockProductRepository(), nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	return repositories.NewGORMProductRepository(db), nil
}

// seedProducts populates the product repository with some initial data.
func seedProducts(repo repositories.ProductRepository, logger *logrus.Logger) {
	products := []models.Product{
		{Name: "Monitor Curvo de 49 pulgadas", Price: 400, Available: true},
		{Name: "Teclado Mecánico", Price: 75, Available: true},
		{Name: "Mouse Inalámbrico", Price: 25, Available: true},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			logger.WithError(err).Errorf("Error seeding product %s", products[i].Name)
			continue
		}
		logger.Infof("Seeded product: %s (ID: %d)", products[i].Name, products[i].ID)
	}
}
