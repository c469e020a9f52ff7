package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	api "church-inventory-backend/internal/api/http"
	"church-inventory-backend/internal/config"
	"church-inventory-backend/internal/logger"
	"church-inventory-backend/internal/qr"
	"church-inventory-backend/internal/repository/postgres"
	"church-inventory-backend/internal/repository/postgres/migrations"
	"church-inventory-backend/internal/security"
	"church-inventory-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting church inventory backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if err := migrations.Up(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		log.Fatalf("Failed to migrate database: %v", err)
	}
	logger.Info("Database schema up to date")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	codec := qr.NewCodec(cfg.QR.BaseURL)

	emailSender := service.NewEmailSender(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	smsSender := service.NewSMSSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.PhoneNumber)

	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository)
	checkoutSvc := service.NewCheckoutService(store.CheckoutRepository, store.EquipmentRepository)
	verificationSvc := service.NewVerificationService(store.VerificationRepository)
	authSvc := service.NewAuthService(
		store.UserRepository,
		verificationSvc,
		emailSender,
		smsSender,
		tokenManager,
		time.Duration(cfg.JWT.CodeTTLMinutes)*time.Minute,
	)
	exportSvc := service.NewExportService(store.EquipmentRepository, store.CheckoutRepository)

	router := api.NewRouter(
		api.NewAuthMiddleware(tokenManager),
		api.NewAuthHandler(authSvc),
		api.NewEquipmentHandler(equipmentSvc, checkoutSvc, codec),
		api.NewCheckoutHandler(checkoutSvc),
		api.NewExportHandler(exportSvc),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
