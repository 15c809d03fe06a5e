package services

import (
	"context"
	"testing"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/pkg"
	"github.com/emergency-fund/fund-ledger/tests/mocks"
	"github.com/emergency-fund/fund-ledger/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// internalCtx is used in mock expectations for contexts created inside the service (e.g. session contexts)
var internalCtx = mock.Anything

func newTestConfig(t *testing.T) *config.Config {
	cfg := &config.Config{
		Server: config.ServerConfig{
			EnableAirdrop:    true,
			MaxAirdropAmount: 10 * 1_000_000_000,
			DefaultListLimit: 50,
			MaxListLimit:     200,
		},
		Fund: config.FundConfig{
			ProgramID:       testutil.RandomAddress(t).String(),
			CreationDeposit: pkg.Ptr[uint64](1000),
		},
		Dispatcher: config.DispatcherConfig{
			PollingInterval: time.Millisecond,
			BatchSize:       10,
			MaxAttempts:     3,
			PublishRetries:  2,
			RetryInterval:   time.Millisecond,
		},
	}
	require.NoError(t, cfg.Fund.Validate())
	return cfg
}

// expectTransaction makes RunInTransaction execute the callback once, the way
// a committed transaction does.
func expectTransaction(dbMock *mocks.DbInterface) {
	dbMock.On("RunInTransaction", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now(context.Context) (time.Time, error) {
	return c.now, nil
}
