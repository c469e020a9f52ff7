package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"church-inventory-backend/internal/config"
	"church-inventory-backend/internal/jobs"
	"church-inventory-backend/internal/logger"
	"church-inventory-backend/internal/repository/postgres"
	"church-inventory-backend/internal/scheduler"
	"church-inventory-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a single job immediately and exit (overdue-summary)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting cron job runner...", "log_level", cfg.Log.Level)

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

	store := postgres.NewStore(db)

	emailSender := service.NewEmailSender(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	checkoutSvc := service.NewCheckoutService(store.CheckoutRepository, store.EquipmentRepository)

	jobRunner := jobs.NewJobRunner(checkoutSvc, emailSender, cfg)

	if *runOnce != "" {
		runSingleJob(jobRunner, *runOnce)
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	logger.Info("Scheduler started", "overdue_summary", cfg.Scheduler.OverdueSummary)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", "signal", sig.String())

	sched.Stop()
	logger.Info("Cron job runner stopped")
}

func runSingleJob(jobRunner *jobs.JobRunner, name string) {
	logger.Info("Running single job", "job", name)
	switch name {
	case "overdue-summary":
		jobRunner.SendOverdueSummary()
	default:
		log.Fatalf("Unknown job: %s (valid: overdue-summary)", name)
	}
	logger.Info("Job completed", "job", name)
}
