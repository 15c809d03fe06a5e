package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/emergency-fund/fund-ledger/consumer"
	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/internal/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	ErrPublishNacked      = errors.New("message was not acknowledged by the broker")
	ErrConfirmTimeout     = errors.New("broker confirmation timed out")
	ErrManagerShutdown    = errors.New("queue manager is shut down")
	ErrChannelUnavailable = errors.New("queue channel is not available")
)

var _ consumer.EventPublisher = (*QueueManager)(nil)

// publishChannel is the part of *amqp.Channel the manager publishes through.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// channelOpener opens a channel in confirm mode together with its
// confirmation stream.
type channelOpener func() (publishChannel, <-chan amqp.Confirmation, error)

// QueueManager pushes donation events to a durable queue and waits for the
// broker to confirm every message.
type QueueManager struct {
	cfg         *config.QueueConfig
	logger      *zap.Logger
	conn        *amqp.Connection
	openChannel channelOpener

	// publishing is serialized so confirmations arrive in publish order.
	// channel is nil after it was invalidated and is reopened on the next publish.
	mu       sync.Mutex
	channel  publishChannel
	confirms <-chan amqp.Confirmation
	shutdown bool
}

func NewQueueManager(cfg *config.QueueConfig, logger *zap.Logger) (*QueueManager, error) {
	conn, err := amqp.Dial(connectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to queue: %w", err)
	}

	qm := newQueueManager(cfg, logger, confirmChannelOpener(conn, cfg))
	qm.conn = conn
	if err := qm.ensureChannel(); err != nil {
		conn.Close()
		return nil, err
	}

	logger.Info("connected to queue",
		zap.String("queue", cfg.QueueName),
		zap.String("type", cfg.QueueType),
	)
	return qm, nil
}

func confirmChannelOpener(conn *amqp.Connection, cfg *config.QueueConfig) channelOpener {
	return func() (publishChannel, <-chan amqp.Confirmation, error) {
		ch, err := conn.Channel()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open channel: %w", err)
		}

		_, err = ch.QueueDeclare(
			cfg.QueueName,
			true,  // durable
			false, // auto-delete
			false, // exclusive
			false, // no-wait
			amqp.Table{"x-queue-type": cfg.QueueType},
		)
		if err != nil {
			ch.Close()
			return nil, nil, fmt.Errorf("failed to declare queue %s: %w", cfg.QueueName, err)
		}

		if err := ch.Confirm(false); err != nil {
			ch.Close()
			return nil, nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
		}
		return ch, ch.NotifyPublish(make(chan amqp.Confirmation, 1)), nil
	}
}

func newQueueManager(cfg *config.QueueConfig, logger *zap.Logger, openChannel channelOpener) *QueueManager {
	return &QueueManager{
		cfg:         cfg,
		logger:      logger,
		openChannel: openChannel,
	}
}

// ensureChannel must be called with mu held.
func (qm *QueueManager) ensureChannel() error {
	if qm.channel != nil {
		return nil
	}

	ch, confirms, err := qm.openChannel()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrChannelUnavailable, err)
	}
	qm.channel = ch
	qm.confirms = confirms
	return nil
}

// invalidateChannel drops a channel whose confirmation stream can no longer
// be paired with publishes. It must be called with mu held.
func (qm *QueueManager) invalidateChannel() {
	if qm.channel == nil {
		return
	}
	if err := qm.channel.Close(); err != nil {
		qm.logger.Debug("failed to close invalidated channel", zap.Error(err))
	}
	qm.channel = nil
	qm.confirms = nil
}

func (qm *QueueManager) PushDonationEvent(ctx context.Context, ev *types.DonationEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal donation event: %w", err)
	}

	if err := qm.publish(ctx, ev.InvocationID, body); err != nil {
		qm.logger.Warn("failed to push donation event",
			zap.String("invocation_id", ev.InvocationID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (qm *QueueManager) publish(ctx context.Context, messageID string, body []byte) error {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.shutdown {
		return ErrManagerShutdown
	}
	if err := qm.ensureChannel(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := qm.channel.PublishWithContext(ctx, "", qm.cfg.QueueName, false, false, msg); err != nil {
		qm.invalidateChannel()
		return fmt.Errorf("publish: %w", err)
	}

	err := waitForConfirm(ctx, qm.confirms)
	if err != nil && isConfirmStreamCorrupted(err) {
		// a confirmation may still arrive for this message and would be
		// taken for the confirmation of the next one
		qm.invalidateChannel()
	}
	return err
}

func waitForConfirm(ctx context.Context, confirms <-chan amqp.Confirmation) error {
	select {
	case confirmed, ok := <-confirms:
		if !ok {
			return fmt.Errorf("%w: confirmation stream closed", ErrChannelUnavailable)
		}
		if !confirmed.Ack {
			return fmt.Errorf("%w: delivery tag %d", ErrPublishNacked, confirmed.DeliveryTag)
		}
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrConfirmTimeout
		}
		return ctx.Err()
	}
}

func isConfirmStreamCorrupted(err error) bool {
	return errors.Is(err, ErrConfirmTimeout) ||
		errors.Is(err, ErrChannelUnavailable) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() error {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.shutdown {
		return nil
	}
	qm.shutdown = true
	qm.logger.Info("shutting down queue manager")

	var errs []error
	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil {
			errs = append(errs, err)
		}
		qm.channel = nil
	}
	if qm.conn != nil {
		if err := qm.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func connectionURL(cfg *config.QueueConfig) string {
	u := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Url,
	}
	return u.String()
}
