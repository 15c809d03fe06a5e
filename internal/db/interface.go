package db

import (
	"context"

	"github.com/emergency-fund/fund-ledger/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// RunInTransaction runs fn inside a multi-document transaction. Methods
	// called with the context handed to fn join the transaction. fn can be
	// invoked again on transient errors.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// SaveNewFund returns DuplicateKeyError if the fund already exists.
	SaveNewFund(ctx context.Context, fund *model.FundDocument) error
	GetFundByAddress(ctx context.Context, address string) (*model.FundDocument, error)
	// UpdateFundTotalRaised sets total_raised if it still equals previous,
	// otherwise NotFoundError is returned.
	UpdateFundTotalRaised(ctx context.Context, address string, previous, total uint64) error

	// GetBalance returns zero for addresses that hold nothing.
	GetBalance(ctx context.Context, address string) (uint64, error)
	SetBalance(ctx context.Context, address string, amount uint64) error

	// SaveDonationEvent returns DuplicateKeyError if the invocation id was already used.
	SaveDonationEvent(ctx context.Context, event *model.DonationEventDocument) error
	GetDonationEventsByFund(ctx context.Context, fundAddress string, limit int64) ([]*model.DonationEventDocument, error)
	FindDispatchableDonationEvents(ctx context.Context, maxAttempts int, limit int64) ([]*model.DonationEventDocument, error)
	MarkDonationEventPublished(ctx context.Context, invocationID string) error
	MarkDonationEventFailed(ctx context.Context, invocationID string, reason string) error
}
