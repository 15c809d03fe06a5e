package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/emergency-fund/fund-ledger/consumer"
	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/internal/db"
	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/internal/observability/metrics"
	"github.com/emergency-fund/fund-ledger/internal/utils/poller"
	"github.com/rs/zerolog/log"
)

// EventDispatcher delivers donation events from the outbox to the queue.
// Delivery is at-least-once: an event that was pushed but could not be
// marked as published is pushed again on the next run.
type EventDispatcher struct {
	cfg       *config.DispatcherConfig
	db        db.DbInterface
	publisher consumer.EventPublisher
}

func NewEventDispatcher(cfg *config.DispatcherConfig, db db.DbInterface, publisher consumer.EventPublisher) *EventDispatcher {
	return &EventDispatcher{
		cfg:       cfg,
		db:        db,
		publisher: publisher,
	}
}

// Start blocks until ctx is cancelled.
func (d *EventDispatcher) Start(ctx context.Context) {
	dispatchPoller := poller.NewPoller(
		"donation_events_dispatcher",
		d.cfg.PollingInterval,
		metrics.RecordPollerDuration("dispatch_donation_events", d.dispatch),
	)
	dispatchPoller.Start(ctx)
}

func (d *EventDispatcher) dispatch(ctx context.Context) error {
	events, err := d.db.FindDispatchableDonationEvents(ctx, d.cfg.MaxAttempts, d.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to load donation events: %w", err)
	}
	metrics.RecordDispatchBacklog(len(events))

	var errs []error
	for _, event := range events {
		if err := d.deliver(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// deliver publishes one event and records the outcome. Only storage errors
// are returned, a failed publish is recorded on the event itself.
func (d *EventDispatcher) deliver(ctx context.Context, doc *model.DonationEventDocument) error {
	event := doc.ToDonationEvent()
	logger := log.Ctx(ctx).With().Str("invocation_id", doc.InvocationID).Logger()

	startTime := time.Now()
	err := retry.Do(
		func() error {
			return d.publisher.PushDonationEvent(ctx, &event)
		},
		retry.Context(ctx),
		retry.Attempts(d.cfg.PublishRetries),
		retry.Delay(d.cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", d.cfg.PublishRetries).
				Err(err).
				Msg("failed to push donation event, retrying")
		}),
	)

	metrics.RecordEventPublishDuration(time.Since(startTime), doc.Attempts+1, err != nil)

	if err != nil {
		metrics.RecordQueueSendError()
		logger.Warn().Err(err).Int("attempts", doc.Attempts+1).Msg("failed to push donation event")

		if markErr := d.db.MarkDonationEventFailed(ctx, doc.InvocationID, err.Error()); markErr != nil {
			return fmt.Errorf("failed to mark donation event %s as failed: %w", doc.InvocationID, markErr)
		}
		return nil
	}

	if err := d.db.MarkDonationEventPublished(ctx, doc.InvocationID); err != nil {
		return fmt.Errorf("failed to mark donation event %s as published: %w", doc.InvocationID, err)
	}

	logger.Debug().Msg("Donation event published")
	return nil
}
