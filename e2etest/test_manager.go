package e2etest

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/emergency-fund/fund-ledger/e2etest/container"
	"github.com/emergency-fund/fund-ledger/internal/api"
	"github.com/emergency-fund/fund-ledger/internal/api/handlers"
	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/internal/db"
	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/internal/queue"
	"github.com/emergency-fund/fund-ledger/internal/services"
	"github.com/emergency-fund/fund-ledger/pkg"
	"github.com/emergency-fund/fund-ledger/testutil"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var eventuallyWaitTimeOut = 40 * time.Second

type TestManager struct {
	Config       *config.Config
	DbClient     *db.Database
	QueueManager *queue.QueueManager
	Server       *httptest.Server
	// DonationEventChan receives the messages the dispatcher published
	DonationEventChan <-chan amqp.Delivery

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// StartManager runs the whole ledger against fresh MongoDB and RabbitMQ
// containers: the HTTP API on a test server and the event dispatcher in the
// background.
func StartManager(t *testing.T) *TestManager {
	manager, err := container.NewManager(t)
	require.NoError(t, err)

	brokerAddr := manager.RunRabbitMQResource(t)

	dbCfg, cleanupMongo, err := testutil.SetupMongoContainer("fund-ledger-e2e")
	require.NoError(t, err)
	t.Cleanup(cleanupMongo)

	cfg := DefaultFundLedgerConfig(t, *dbCfg, brokerAddr)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, model.Setup(ctx, &cfg.Db))

	dbClient, err := db.New(ctx, cfg.Db)
	require.NoError(t, err)

	queueManager, err := queue.NewQueueManager(&cfg.Queue, zap.NewNop())
	require.NoError(t, err)

	deliveries, err := consumeQueue(t, cfg.Queue)
	require.NoError(t, err)

	var dbWithMetrics db.DbInterface = db.NewDbWithMetrics(dbClient)
	service := services.NewService(cfg, dbWithMetrics, services.NewSystemClock())
	dispatcher := services.NewEventDispatcher(&cfg.Dispatcher, dbWithMetrics, queueManager)

	router := api.NewRouter(handlers.New(service), cfg.Server.EnableAirdrop)
	server := httptest.NewServer(router)

	tm := &TestManager{
		Config:            cfg,
		DbClient:          dbClient,
		QueueManager:      queueManager,
		Server:            server,
		DonationEventChan: deliveries,
		cancel:            cancel,
	}

	tm.wg.Add(1)
	go func() {
		defer tm.wg.Done()
		dispatcher.Start(ctx)
	}()

	return tm
}

func (tm *TestManager) Stop(t *testing.T) {
	tm.cancel()
	tm.wg.Wait()
	tm.Server.Close()

	require.NoError(t, tm.QueueManager.Shutdown())
	require.NoError(t, tm.DbClient.Disconnect(context.Background()))
}

func DefaultFundLedgerConfig(t *testing.T, dbCfg config.DbConfig, brokerAddr string) *config.Config {
	cfg := &config.Config{
		Db: dbCfg,
		Queue: config.QueueConfig{
			User:      container.RabbitMQUser,
			Password:  container.RabbitMQPassword,
			Url:       brokerAddr,
			QueueType: config.QueueTypeClassic,
		},
		Server: config.ServerConfig{
			Host:             "127.0.0.1",
			Port:             0,
			WriteTimeout:     time.Minute,
			ReadTimeout:      time.Minute,
			IdleTimeout:      time.Minute,
			EnableAirdrop:    true,
			MaxAirdropAmount: 100 * 1_000_000_000,
		},
		Fund: config.FundConfig{
			ProgramID:       testutil.RandomAddress(t).String(),
			CreationDeposit: pkg.Ptr[uint64](1_000),
		},
		Dispatcher: config.DispatcherConfig{
			PollingInterval: 200 * time.Millisecond,
			BatchSize:       50,
			MaxAttempts:     5,
			PublishRetries:  3,
			RetryInterval:   50 * time.Millisecond,
		},
		Metrics: config.MetricsConfig{
			Host: "127.0.0.1",
			Port: 2112,
		},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

// consumeQueue opens a dedicated connection reading the donation queue.
func consumeQueue(t *testing.T, cfg config.QueueConfig) (<-chan amqp.Delivery, error) {
	conn, err := amqp.Dial(fmt.Sprintf("amqp://%s:%s@%s/", cfg.User, cfg.Password, cfg.Url))
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	return ch.Consume(
		cfg.QueueName,
		"",    // consumer
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
}
