// Package cli implements the frota command, an operator shell over the rental API.
package cli

import (
	"context"
	"fmt"
	"os"

	"locadora-admin/internal/config"
	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/notify"
	"locadora-admin/internal/pricing"
	"locadora-admin/internal/repository/remote"
	"locadora-admin/internal/service"

	"github.com/spf13/cobra"
)

type ReservationClient interface {
	Quote(ctx context.Context, startDate, endDate, vehicleID string) (pricing.Quote, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	AvailableActions(ctx context.Context, id string) (*domain.Reservation, []lifecycle.Action, error)
}

type VehicleClient interface {
	Search(ctx context.Context, filter service.VehicleFilter) ([]domain.Vehicle, error)
	SetStatus(ctx context.Context, id string, status domain.VehicleStatus, note string) (*domain.Vehicle, error)
}

type StatsClient interface {
	Summary(ctx context.Context) (*service.Stats, error)
}

// App holds what the subcommands need once the configuration is loaded.
type App struct {
	Reservations ReservationClient
	Vehicles     VehicleClient
	Stats        StatsClient
}

// Loader builds the App from the --config path.
type Loader func(configPath string) (*App, error)

// LoadApp wires the services against the rental API configured in configPath.
func LoadApp(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	// Keep stdout for command output.
	logger.InitializeWithWriter(os.Stderr, "warn", cfg.Log.Format)

	store := remote.NewStore(cfg.API.BaseURL, cfg.APITimeout())

	var notifier notify.Notifier = notify.NewLogNotifier()
	if cfg.Notify.SendGridAPIKey != "" {
		notifier = notify.NewSendGridNotifier(cfg.Notify.SendGridAPIKey, cfg.Notify.FromEmail, cfg.Notify.FromName)
	}

	return &App{
		Reservations: service.NewReservationService(store.Reservations, store.Vehicles, store.Customers, notifier),
		Vehicles:     service.NewVehicleService(store.Vehicles, store.StatusHistory),
		Stats:        service.NewStatsService(store.Vehicles, store.Customers, store.Reservations, store.Payments),
	}, nil
}

// NewRootCmd builds the frota command tree. load is called once before any subcommand runs.
func NewRootCmd(load Loader) *cobra.Command {
	var configPath string
	app := &App{}

	root := &cobra.Command{
		Use:           "frota",
		Short:         "Fleet and reservation operations for the rental back office",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			*app = *loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/config.dev.yaml", "Path to configuration file")

	root.AddCommand(quoteCmd(app))
	root.AddCommand(reservationsCmd(app))
	root.AddCommand(vehiclesCmd(app))
	root.AddCommand(statsCmd(app))
	return root
}
