package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	api "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/inventory"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/notify"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/repository/memory"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())

	// Initialize stores
	var (
		customerRepo repository.CustomerRepository
		vehicleRepo  repository.VehicleRepository
		rentalRepo   repository.RentalRepository
	)
	if cfg.Database.Driver == "memory" {
		logger.Info("Using in-memory store")
		store := memory.NewStore()
		customerRepo = store.CustomerRepository
		vehicleRepo = store.VehicleRepository
		rentalRepo = store.RentalRepository
	} else {
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		store := postgres.NewStore(db)
		customerRepo = store.CustomerRepository
		vehicleRepo = store.VehicleRepository
		rentalRepo = store.RentalRepository
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	authMiddleware := api.NewAuthMiddleware(tokenManager)

	// Initialize Notifier
	var notifier service.Notifier
	if cfg.SendGrid.APIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		logger.Warn("SendGrid not configured; booking notifications disabled")
	}

	// Initialize pricing and inventory
	rateTable := pricing.NewTable()
	calculator := pricing.NewCalculator(rateTable)
	vehicleInventory := inventory.New(vehicleRepo)

	// Initialize Services
	clock := service.SystemClock{}
	customerSvc := service.NewCustomerService(customerRepo, clock)
	vehicleSvc := service.NewVehicleService(vehicleRepo, clock)
	rentalSvc := service.NewRentalService(
		rentalRepo,
		customerRepo,
		vehicleRepo,
		vehicleInventory,
		calculator,
		notifier,
		clock,
	)

	// Initialize HTTP handlers
	router := api.NewRouter(
		authMiddleware,
		api.NewRentalHandler(rentalSvc),
		api.NewCustomerHandler(customerSvc),
		api.NewVehicleHandler(vehicleSvc),
	)

	serve(cfg, router)
}

func serve(cfg *config.Config, router *mux.Router) {
	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
