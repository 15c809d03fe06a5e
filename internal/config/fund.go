package config

import (
	"fmt"

	"github.com/emergency-fund/fund-ledger/internal/types"
)

const DefaultFundSeed = "emergency_fund"

type FundConfig struct {
	// ProgramID namespaces derived fund addresses, base58 encoded.
	ProgramID   string `mapstructure:"program-id"`
	DefaultSeed string `mapstructure:"default-seed"`
	// CreationDeposit overrides the rent-exempt minimum paid by the authority
	// on initialization. Zero disables the deposit.
	CreationDeposit *uint64 `mapstructure:"creation-deposit"`

	programAddress types.Address
}

func (cfg *FundConfig) Validate() error {
	addr, err := types.ParseAddress(cfg.ProgramID)
	if err != nil {
		return fmt.Errorf("invalid fund program id: %w", err)
	}
	cfg.programAddress = addr

	if cfg.DefaultSeed == "" {
		cfg.DefaultSeed = DefaultFundSeed
	}
	if len(cfg.DefaultSeed) > types.MaxSeedLength {
		return fmt.Errorf("default seed exceeds %d bytes", types.MaxSeedLength)
	}

	return nil
}

// ProgramAddress is only populated after Validate.
func (cfg *FundConfig) ProgramAddress() types.Address {
	return cfg.programAddress
}

func (cfg *FundConfig) Deposit() uint64 {
	if cfg.CreationDeposit != nil {
		return *cfg.CreationDeposit
	}
	return types.RentExemptMinimum(types.FundAccountSize)
}
