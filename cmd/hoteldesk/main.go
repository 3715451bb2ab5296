package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hoteldesk/internal/cli"
	"hoteldesk/internal/config"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/events"
	"hoteldesk/internal/logging"
	"hoteldesk/internal/metrics"
	"hoteldesk/internal/repository"
	"hoteldesk/internal/service"
	"hoteldesk/internal/storage"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	accounts, err := store.LoadAccounts(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}
	bookings, err := store.LoadBookings(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}
	sales, err := store.LoadSalesRecords(ctx)
	if err != nil {
		return fmt.Errorf("load sales records: %w", err)
	}
	logger.Info().
		Int("accounts", len(accounts)).
		Int("bookings", len(bookings)).
		Int("sales_records", len(sales)).
		Msg("state loaded")

	eventBus := events.NewEventBus()
	subscribeAuditLog(eventBus, logger)

	repo := repository.NewBookings(bookings)
	ledger := repository.NewSalesLedger(sales)

	accountService := service.NewAccountService(accounts, store, eventBus, logger)
	bookingService := service.NewBookingService(repo, ledger, store, eventBus, cfg.Rooms, logger)
	salesService := service.NewSalesService(ledger, logger)

	if err := accountService.EnsureOwner(ctx); err != nil {
		return fmt.Errorf("bootstrap owner account: %w", err)
	}

	if cfg.Monitoring.PrometheusEnabled {
		metrics.Register()
		go serveMetrics(cfg.Monitoring.PrometheusPort, logger)
	}

	ui := cli.NewUI(bookingService, salesService, accountService, cfg.Exports.Path,
		bufio.NewReader(os.Stdin), os.Stdout, logger)

	logger.Info().Str("driver", cfg.Storage.Driver).Msg("front desk ready")
	if err := ui.Run(ctx); err != nil && err != context.Canceled {
		return err
	}

	logger.Info().Msg("shutting down")
	return nil
}

func openStore(cfg *config.Config, logger *zerolog.Logger) (domain.Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := storage.OpenSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	default:
		store, err := storage.OpenJSONStore(cfg.Storage.Dir)
		if err != nil {
			return nil, fmt.Errorf("open json store: %w", err)
		}
		backup := storage.NewBackupService(cfg.Backup, logger)
		if err := backup.Run(store.Files()); err != nil {
			logger.Warn().Err(err).Msg("store backup failed")
		}
		return store, nil
	}
}

// subscribeAuditLog mirrors every domain event into the structured log.
func subscribeAuditLog(bus *events.EventBus, logger *zerolog.Logger) {
	eventTypes := []string{
		events.EventBookingCreated,
		events.EventBookingUpdated,
		events.EventBookingRoomChanged,
		events.EventBookingCheckedIn,
		events.EventBookingCheckedOut,
		events.EventBookingCanceled,
		events.EventAccountCreated,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, func(event *events.Event) error {
			logger.Info().
				Str("event", event.Type).
				RawJSON("payload", event.Payload).
				Msg("audit")
			return nil
		})
	}
}

func serveMetrics(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("metrics endpoint listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Msg("metrics endpoint stopped")
	}
}
