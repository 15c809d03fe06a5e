package db

import (
	"context"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.run("RunInTransaction", func() error {
		return d.db.RunInTransaction(ctx, fn)
	})
}

func (d *DbWithMetrics) SaveNewFund(ctx context.Context, fund *model.FundDocument) error {
	return d.run("SaveNewFund", func() error {
		return d.db.SaveNewFund(ctx, fund)
	})
}

func (d *DbWithMetrics) GetFundByAddress(ctx context.Context, address string) (result *model.FundDocument, err error) {
	//nolint:errcheck
	d.run("GetFundByAddress", func() error {
		result, err = d.db.GetFundByAddress(ctx, address)
		return err
	})

	return
}

func (d *DbWithMetrics) UpdateFundTotalRaised(ctx context.Context, address string, previous, total uint64) error {
	return d.run("UpdateFundTotalRaised", func() error {
		return d.db.UpdateFundTotalRaised(ctx, address, previous, total)
	})
}

func (d *DbWithMetrics) GetBalance(ctx context.Context, address string) (result uint64, err error) {
	//nolint:errcheck
	d.run("GetBalance", func() error {
		result, err = d.db.GetBalance(ctx, address)
		return err
	})

	return
}

func (d *DbWithMetrics) SetBalance(ctx context.Context, address string, amount uint64) error {
	return d.run("SetBalance", func() error {
		return d.db.SetBalance(ctx, address, amount)
	})
}

func (d *DbWithMetrics) SaveDonationEvent(ctx context.Context, event *model.DonationEventDocument) error {
	return d.run("SaveDonationEvent", func() error {
		return d.db.SaveDonationEvent(ctx, event)
	})
}

func (d *DbWithMetrics) GetDonationEventsByFund(ctx context.Context, fundAddress string, limit int64) (result []*model.DonationEventDocument, err error) {
	//nolint:errcheck
	d.run("GetDonationEventsByFund", func() error {
		result, err = d.db.GetDonationEventsByFund(ctx, fundAddress, limit)
		return err
	})

	return
}

func (d *DbWithMetrics) FindDispatchableDonationEvents(ctx context.Context, maxAttempts int, limit int64) (result []*model.DonationEventDocument, err error) {
	//nolint:errcheck
	d.run("FindDispatchableDonationEvents", func() error {
		result, err = d.db.FindDispatchableDonationEvents(ctx, maxAttempts, limit)
		return err
	})

	return
}

func (d *DbWithMetrics) MarkDonationEventPublished(ctx context.Context, invocationID string) error {
	return d.run("MarkDonationEventPublished", func() error {
		return d.db.MarkDonationEventPublished(ctx, invocationID)
	})
}

func (d *DbWithMetrics) MarkDonationEventFailed(ctx context.Context, invocationID string, reason string) error {
	return d.run("MarkDonationEventFailed", func() error {
		return d.db.MarkDonationEventFailed(ctx, invocationID, reason)
	})
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
