package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/api"
	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/internal/db"
	dbmodel "github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/internal/observability/metrics"
	"github.com/emergency-fund/fund-ledger/internal/observability/tracing"
	"github.com/emergency-fund/fund-ledger/internal/queue"
	"github.com/emergency-fund/fund-ledger/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the fund ledger API server and event dispatcher",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
		return fmt.Errorf("error while setting up fund db model: %w", err)
	}

	// create new db client
	database, err := db.New(ctx, cfg.Db)
	if err != nil {
		return fmt.Errorf("error while creating db client: %w", err)
	}
	defer func() {
		if err := database.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error while disconnecting db client")
		}
	}()
	var dbClient db.DbInterface = db.NewDbWithMetrics(database)

	zapLogger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("error while creating zap logger: %w", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	queueManager, err := queue.NewQueueManager(&cfg.Queue, zapLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize queue manager: %w", err)
	}
	defer func() {
		if err := queueManager.Shutdown(); err != nil {
			log.Error().Err(err).Msg("error while shutting down queue manager")
		}
	}()

	service := services.NewService(cfg, dbClient, services.NewSystemClock())
	dispatcher := services.NewEventDispatcher(&cfg.Dispatcher, dbClient, queueManager)
	server := api.New(cfg, service)

	// initialize metrics with the metrics port from config
	metrics.Init(cfg.Metrics.Host, cfg.Metrics.GetMetricsPort())

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		return server.Start()
	})
	p.Go(func(ctx context.Context) error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	p.Go(func(ctx context.Context) error {
		dispatcher.Start(ctx)
		return nil
	})

	err = p.Wait()
	log.Info().Msg("Fund ledger stopped")
	return err
}
