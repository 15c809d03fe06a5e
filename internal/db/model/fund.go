package model

import (
	"time"

	"github.com/emergency-fund/fund-ledger/internal/types"
)

const FundCollection = "funds"

// FundDocument is the fund record. The address is the primary key so a
// second initialization of the same slot fails on insert.
type FundDocument struct {
	Address     string    `bson:"_id"`
	Authority   string    `bson:"authority"`
	TotalRaised Amount    `bson:"total_raised"`
	CreatedAt   time.Time `bson:"created_at"`
}

func NewFundDocument(address, authority types.Address, createdAt time.Time) *FundDocument {
	return &FundDocument{
		Address:     address.String(),
		Authority:   authority.String(),
		TotalRaised: 0,
		CreatedAt:   createdAt,
	}
}

func (f *FundDocument) ToFundAccount() (types.FundAccount, error) {
	authority, err := types.ParseAddress(f.Authority)
	if err != nil {
		return types.FundAccount{}, err
	}
	return types.FundAccount{
		Authority:   authority,
		TotalRaised: f.TotalRaised.Uint64(),
	}, nil
}
