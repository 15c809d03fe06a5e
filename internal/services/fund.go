package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/db"
	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/internal/observability/metrics"
	"github.com/emergency-fund/fund-ledger/internal/types"
	"github.com/rs/zerolog/log"
)

// InitializeFund creates the fund record in the slot derived from authority
// and seed, and moves the creation deposit from the authority to the fund.
func (s *Service) InitializeFund(
	ctx context.Context, authority types.Address, seed string,
) (*types.FundDetails, *types.Error) {
	address, addrErr := s.FundAddress(authority, seed)
	if addrErr != nil {
		return nil, addrErr
	}

	deposit := s.cfg.Fund.Deposit()
	doc := model.NewFundDocument(address, authority, time.Now().UTC())

	txErr := s.db.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.db.SaveNewFund(ctx, doc); err != nil {
			if db.IsDuplicateKeyError(err) {
				return types.NewErrorWithMsg(
					http.StatusConflict,
					types.AlreadyInitialized,
					fmt.Sprintf("fund %s is already initialized", address),
				)
			}
			return types.NewInternalServiceError(
				fmt.Errorf("failed to save fund: %w", err),
			)
		}

		if deposit > 0 {
			if err := s.transfer(ctx, authority, address, deposit); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		metrics.RecordOperation("initialize", true)
		return nil, types.AsError(txErr)
	}
	metrics.RecordOperation("initialize", false)

	log.Ctx(ctx).Info().
		Stringer("fund", address).
		Stringer("authority", authority).
		Uint64("deposit", deposit).
		Msg("Fund initialized")

	return s.GetFund(ctx, address)
}

// FundAddress derives the slot of the fund owned by authority. An empty seed
// selects the configured default.
func (s *Service) FundAddress(authority types.Address, seed string) (types.Address, *types.Error) {
	if seed == "" {
		seed = s.cfg.Fund.DefaultSeed
	}

	address, err := types.DeriveFundAddress(authority, seed, s.cfg.Fund.ProgramAddress())
	if err != nil {
		return types.Address{}, types.NewValidationFailedError(err)
	}
	return address, nil
}

func (s *Service) GetFund(ctx context.Context, address types.Address) (*types.FundDetails, *types.Error) {
	fund, err := s.getFundDocument(ctx, address)
	if err != nil {
		return nil, err
	}

	account, convErr := fund.ToFundAccount()
	if convErr != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("corrupted fund record %s: %w", address, convErr),
		)
	}

	balance, balErr := s.db.GetBalance(ctx, address.String())
	if balErr != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to get fund balance: %w", balErr),
		)
	}

	return &types.FundDetails{
		Address:     address,
		Authority:   account.Authority,
		TotalRaised: account.TotalRaised,
		Balance:     balance,
		CreatedAt:   fund.CreatedAt,
	}, nil
}

// GetFundAccount returns the fund record in its fixed binary layout.
func (s *Service) GetFundAccount(ctx context.Context, address types.Address) ([]byte, *types.Error) {
	fund, err := s.getFundDocument(ctx, address)
	if err != nil {
		return nil, err
	}

	account, convErr := fund.ToFundAccount()
	if convErr != nil {
		return nil, types.NewInternalServiceError(
			fmt.Errorf("corrupted fund record %s: %w", address, convErr),
		)
	}

	data, marshalErr := account.MarshalBinary()
	if marshalErr != nil {
		return nil, types.NewInternalServiceError(marshalErr)
	}
	return data, nil
}

func (s *Service) getFundDocument(ctx context.Context, address types.Address) (*model.FundDocument, *types.Error) {
	fund, err := s.db.GetFundByAddress(ctx, address.String())
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, types.NewErrorWithMsg(
				http.StatusNotFound,
				types.NotFound,
				fmt.Sprintf("fund %s not found", address),
			)
		}
		return nil, types.NewInternalServiceError(
			fmt.Errorf("failed to get fund: %w", err),
		)
	}
	return fund, nil
}
