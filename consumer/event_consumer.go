package consumer

import (
	"context"

	"github.com/emergency-fund/fund-ledger/internal/types"
)

//go:generate mockery --name=EventPublisher --output=../tests/mocks --outpkg=mocks --filename=mock_event_publisher.go
type EventPublisher interface {
	PushDonationEvent(ctx context.Context, ev *types.DonationEvent) error
}
