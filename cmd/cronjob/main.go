package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"locadora-admin/internal/config"
	"locadora-admin/internal/jobs"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/notify"
	"locadora-admin/internal/repository/remote"
	"locadora-admin/internal/scheduler"
	"locadora-admin/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'AuditReservationQuotes', 'ProbeUpstream', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Locadora Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Repositories
	store := remote.NewStore(cfg.API.BaseURL, cfg.APITimeout())

	// Initialize Services
	jobServices := &jobs.Services{
		Reservations: service.NewReservationService(store.Reservations, store.Vehicles, store.Customers, notify.NewLogNotifier()),
		Vehicles:     service.NewVehicleService(store.Vehicles, store.StatusHistory),
		Upstream:     store.Client,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		if *runOnce == "all" {
			jobRunner.RunAll()
		} else if err := jobRunner.Run(*runOnce); err != nil {
			logger.Error("Unknown job name", "job", *runOnce)
			fmt.Printf("Available jobs:\n")
			for _, name := range jobRunner.JobNames() {
				fmt.Printf("  - %s\n", name)
			}
			fmt.Printf("  - all\n")
			os.Exit(1)
		}
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}
