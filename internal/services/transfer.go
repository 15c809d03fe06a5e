package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emergency-fund/fund-ledger/internal/types"
)

// transfer moves amount from one balance to another. It must run inside a
// transaction: the two balance writes are not atomic on their own.
func (s *Service) transfer(ctx context.Context, from, to types.Address, amount uint64) *types.Error {
	fromBalance, err := s.db.GetBalance(ctx, from.String())
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to get balance of %s: %w", from, err),
		)
	}

	if fromBalance < amount {
		return types.NewErrorWithMsg(
			http.StatusUnprocessableEntity,
			types.TransferFailed,
			fmt.Sprintf("insufficient balance: %s holds %d, transfer requires %d", from, fromBalance, amount),
		)
	}

	if from == to {
		return nil
	}

	toBalance, err := s.db.GetBalance(ctx, to.String())
	if err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to get balance of %s: %w", to, err),
		)
	}

	credited, err := types.CheckedAdd(toBalance, amount)
	if err != nil {
		return types.NewError(
			http.StatusUnprocessableEntity,
			types.TransferFailed,
			fmt.Errorf("cannot credit %s: %w", to, err),
		)
	}

	if err := s.db.SetBalance(ctx, from.String(), fromBalance-amount); err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to debit %s: %w", from, err),
		)
	}
	if err := s.db.SetBalance(ctx, to.String(), credited); err != nil {
		return types.NewInternalServiceError(
			fmt.Errorf("failed to credit %s: %w", to, err),
		)
	}

	return nil
}
