package services

import (
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/tests/mocks"
	"github.com/emergency-fund/fund-ledger/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventDispatcher(t *testing.T) {
	ctx := t.Context()
	cfg := newTestConfig(t)

	newEvent := func() *model.DonationEventDocument {
		return model.NewDonationEventDocument(
			gofakeit.UUID(), testutil.RandomAddress(t), testutil.RandomAddress(t), gofakeit.Uint64(), gofakeit.Int64(),
		)
	}

	t.Run("publishes and marks events", func(t *testing.T) {
		first, second := newEvent(), newEvent()

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("FindDispatchableDonationEvents", ctx, cfg.Dispatcher.MaxAttempts, cfg.Dispatcher.BatchSize).
			Return([]*model.DonationEventDocument{first, second}, nil)
		dbMock.On("MarkDonationEventPublished", ctx, first.InvocationID).Return(nil)
		dbMock.On("MarkDonationEventPublished", ctx, second.InvocationID).Return(nil)

		publisher := mocks.NewEventPublisher(t)
		firstEvent := first.ToDonationEvent()
		secondEvent := second.ToDonationEvent()
		publisher.On("PushDonationEvent", ctx, &firstEvent).Return(nil)
		publisher.On("PushDonationEvent", ctx, &secondEvent).Return(nil)

		dispatcher := NewEventDispatcher(&cfg.Dispatcher, dbMock, publisher)
		require.NoError(t, dispatcher.dispatch(ctx))
	})
	t.Run("failed publish is recorded after retries", func(t *testing.T) {
		event := newEvent()

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("FindDispatchableDonationEvents", ctx, mock.Anything, mock.Anything).
			Return([]*model.DonationEventDocument{event}, nil)
		dbMock.On("MarkDonationEventFailed", ctx, event.InvocationID, "broker unavailable").Return(nil)

		publisher := mocks.NewEventPublisher(t)
		publisher.On("PushDonationEvent", ctx, mock.AnythingOfType("*types.DonationEvent")).
			Return(errors.New("broker unavailable")).
			Times(int(cfg.Dispatcher.PublishRetries))

		dispatcher := NewEventDispatcher(&cfg.Dispatcher, dbMock, publisher)
		require.NoError(t, dispatcher.dispatch(ctx))
	})
	t.Run("retry succeeds", func(t *testing.T) {
		event := newEvent()

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("FindDispatchableDonationEvents", ctx, mock.Anything, mock.Anything).
			Return([]*model.DonationEventDocument{event}, nil)
		dbMock.On("MarkDonationEventPublished", ctx, event.InvocationID).Return(nil)

		publisher := mocks.NewEventPublisher(t)
		publisher.On("PushDonationEvent", ctx, mock.Anything).Return(errors.New("timeout")).Once()
		publisher.On("PushDonationEvent", ctx, mock.Anything).Return(nil).Once()

		dispatcher := NewEventDispatcher(&cfg.Dispatcher, dbMock, publisher)
		require.NoError(t, dispatcher.dispatch(ctx))
	})
	t.Run("storage errors are returned", func(t *testing.T) {
		event := newEvent()

		dbMock := mocks.NewDbInterface(t)
		dbMock.On("FindDispatchableDonationEvents", ctx, mock.Anything, mock.Anything).
			Return([]*model.DonationEventDocument{event}, nil)
		dbMock.On("MarkDonationEventPublished", ctx, event.InvocationID).Return(errors.New("write failed"))

		publisher := mocks.NewEventPublisher(t)
		publisher.On("PushDonationEvent", ctx, mock.Anything).Return(nil)

		dispatcher := NewEventDispatcher(&cfg.Dispatcher, dbMock, publisher)
		err := dispatcher.dispatch(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), event.InvocationID)
	})
	t.Run("nothing to dispatch", func(t *testing.T) {
		dbMock := mocks.NewDbInterface(t)
		dbMock.On("FindDispatchableDonationEvents", ctx, mock.Anything, mock.Anything).
			Return(nil, nil)

		dispatcher := NewEventDispatcher(&cfg.Dispatcher, dbMock, mocks.NewEventPublisher(t))
		require.NoError(t, dispatcher.dispatch(ctx))
	})
}

