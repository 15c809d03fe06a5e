package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emergency-fund/fund-ledger/internal/db"
	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/internal/observability/metrics"
	"github.com/emergency-fund/fund-ledger/internal/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Donate moves amount from the donor to the fund, raises the fund total and
// records a donation event. All of it commits together or not at all.
// The fund authority is not consulted: anyone may donate.
func (s *Service) Donate(ctx context.Context, req types.DonateRequest) (*types.DonationEvent, *types.Error) {
	if _, err := uuid.Parse(req.InvocationID); err != nil {
		return nil, types.NewValidationFailedError(
			fmt.Errorf("invalid invocation id %q: %w", req.InvocationID, err),
		)
	}

	var event types.DonationEvent
	txErr := s.db.RunInTransaction(ctx, func(ctx context.Context) error {
		fund, err := s.getFundDocument(ctx, req.Fund)
		if err != nil {
			return err
		}

		if err := s.transfer(ctx, req.Donor, req.Fund, req.Amount); err != nil {
			return err
		}

		previous := fund.TotalRaised.Uint64()
		total, overflowErr := types.CheckedAdd(previous, req.Amount)
		if overflowErr != nil {
			return types.NewError(
				http.StatusUnprocessableEntity,
				types.TotalRaisedOverflow,
				fmt.Errorf("total raised of %s cannot grow by %d: %w", req.Fund, req.Amount, overflowErr),
			)
		}

		if err := s.db.UpdateFundTotalRaised(ctx, fund.Address, previous, total); err != nil {
			return types.NewInternalServiceError(
				fmt.Errorf("failed to update total raised: %w", err),
			)
		}

		now, clockErr := s.clock.Now(ctx)
		if clockErr != nil {
			return types.NewError(
				http.StatusServiceUnavailable,
				types.ClockUnavailable,
				fmt.Errorf("failed to read clock: %w", clockErr),
			)
		}

		doc := model.NewDonationEventDocument(req.InvocationID, req.Fund, req.Donor, req.Amount, now.Unix())
		if err := s.db.SaveDonationEvent(ctx, doc); err != nil {
			if db.IsDuplicateKeyError(err) {
				return types.NewErrorWithMsg(
					http.StatusConflict,
					types.InvocationReplayed,
					fmt.Sprintf("invocation %s was already processed", req.InvocationID),
				)
			}
			return types.NewInternalServiceError(
				fmt.Errorf("failed to save donation event: %w", err),
			)
		}

		event = doc.ToDonationEvent()
		return nil
	})
	if txErr != nil {
		metrics.RecordOperation("donate", true)
		return nil, types.AsError(txErr)
	}

	metrics.RecordOperation("donate", false)
	metrics.RecordDonatedUnits(req.Amount)

	log.Ctx(ctx).Info().
		Stringer("fund", req.Fund).
		Stringer("donor", req.Donor).
		Uint64("amount", req.Amount).
		Str("invocation_id", req.InvocationID).
		Msg("Donation recorded")

	return &event, nil
}

// ListDonations returns the latest donations of a fund, newest first. A zero
// limit selects the configured default, larger limits are capped.
func (s *Service) ListDonations(
	ctx context.Context, fund types.Address, limit int64,
) ([]types.DonationEvent, *types.Error) {
	if limit < 0 {
		return nil, types.NewValidationFailedError(fmt.Errorf("limit cannot be negative"))
	}
	if limit == 0 {
		limit = s.cfg.Server.DefaultListLimit
	}
	limit = min(limit, s.cfg.Server.MaxListLimit)

	if _, err := s.getFundDocument(ctx, fund); err != nil {
		return nil, err
	}

	docs, err := s.db.GetDonationEventsByFund(ctx, fund.String(), limit)
	if err != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to get donation events: %w", err),
		)
	}

	events := make([]types.DonationEvent, 0, len(docs))
	for _, doc := range docs {
		events = append(events, doc.ToDonationEvent())
	}
	return events, nil
}
