package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emergency-fund/fund-ledger/internal/types"
	"github.com/rs/zerolog/log"
)

func (s *Service) GetBalance(ctx context.Context, address types.Address) (uint64, *types.Error) {
	balance, err := s.db.GetBalance(ctx, address.String())
	if err != nil {
		return 0, types.NewInternalServiceError(
			fmt.Errorf("failed to get balance: %w", err),
		)
	}
	return balance, nil
}

// Airdrop credits an address out of thin air. It is meant for development
// networks and is refused unless enabled in the server config.
func (s *Service) Airdrop(ctx context.Context, address types.Address, amount uint64) (uint64, *types.Error) {
	if !s.cfg.Server.EnableAirdrop {
		return 0, types.NewErrorWithMsg(http.StatusForbidden, types.Forbidden, "airdrop is disabled")
	}
	if amount == 0 || amount > s.cfg.Server.MaxAirdropAmount {
		return 0, types.NewValidationFailedError(
			fmt.Errorf("airdrop amount must be between 1 and %d", s.cfg.Server.MaxAirdropAmount),
		)
	}

	var credited uint64
	txErr := s.db.RunInTransaction(ctx, func(ctx context.Context) error {
		balance, err := s.db.GetBalance(ctx, address.String())
		if err != nil {
			return types.NewInternalServiceError(fmt.Errorf("failed to get balance: %w", err))
		}

		credited, err = types.CheckedAdd(balance, amount)
		if err != nil {
			return types.NewError(http.StatusUnprocessableEntity, types.TransferFailed, err)
		}

		if err := s.db.SetBalance(ctx, address.String(), credited); err != nil {
			return types.NewInternalServiceError(fmt.Errorf("failed to set balance: %w", err))
		}
		return nil
	})
	if txErr != nil {
		return 0, types.AsError(txErr)
	}

	log.Ctx(ctx).Info().
		Stringer("address", address).
		Uint64("amount", amount).
		Msg("Airdrop credited")

	return credited, nil
}
