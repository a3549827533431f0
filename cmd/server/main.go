package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "locadora-admin/internal/api/grpc"
	httpapi "locadora-admin/internal/api/http"
	"locadora-admin/internal/config"
	"locadora-admin/internal/domain"
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
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Locadora admin backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "http_address", cfg.GetServerAddress(), "grpc_address", cfg.GetGRPCAddress())
	logger.Info("Rental API configuration", "base_url", cfg.API.BaseURL, "timeout", cfg.APITimeout())

	// Initialize Repositories
	store := remote.NewStore(cfg.API.BaseURL, cfg.APITimeout())

	// Initialize Notifier
	var notifier notify.Notifier
	if cfg.Notify.SendGridAPIKey != "" {
		logger.Info("Using SendGrid notifier", "from", cfg.Notify.FromEmail)
		notifier = notify.NewSendGridNotifier(cfg.Notify.SendGridAPIKey, cfg.Notify.FromEmail, cfg.Notify.FromName)
	} else {
		logger.Info("No SendGrid API key configured, notifications are only logged")
		notifier = notify.NewLogNotifier()
	}

	// Initialize Services
	reservationSvc := service.NewReservationService(store.Reservations, store.Vehicles, store.Customers, notifier)
	vehicleSvc := service.NewVehicleService(store.Vehicles, store.StatusHistory)
	services := httpapi.Services{
		Reservations:  reservationSvc,
		Vehicles:      vehicleSvc,
		Payments:      service.NewPaymentService(store.Payments),
		Stock:         service.NewStockService(store.Stock),
		StatusHistory: service.NewStatusHistoryService(store.StatusHistory),
		Addresses:     service.NewCatalogService[domain.Address]("address", store.Addresses),
		Stores:        service.NewCatalogService[domain.Store]("store", store.Stores),
		Categories:    service.NewCatalogService[domain.Category]("category", store.Categories),
		Customers:     service.NewCatalogService[domain.Customer]("customer", store.Customers),
		Stats:         service.NewStatsService(store.Vehicles, store.Customers, store.Reservations, store.Payments),
		Upstream:      store.Client,
	}

	// Set up gRPC health server
	health := api.NewHealthReporter()
	grpcServer := api.NewServer(health)
	lis, err := net.Listen("tcp", cfg.GetGRPCAddress())
	if err != nil {
		logger.Error("Failed to listen", "error", err, "address", cfg.GetGRPCAddress())
		log.Fatalf("Failed to listen: %v", err)
	}
	go func() {
		logger.Info("gRPC health server listening", "address", cfg.GetGRPCAddress())
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("Failed to serve gRPC", "error", err)
		}
	}()

	// Upstream probe keeps the health status current
	jobRunner := jobs.NewJobRunner(&jobs.Services{
		Reservations: reservationSvc,
		Vehicles:     vehicleSvc,
		Upstream:     store.Client,
		Health:       health,
	}, cfg)
	jobRunner.ProbeUpstream()
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	// Set up HTTP server for the admin API
	httpServer := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(services),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Admin HTTP server listening", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	health.Shutdown()
	cronScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
	logger.Info("Server stopped. Goodbye!")
}
