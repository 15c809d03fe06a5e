package types

import "time"

// FundDetails is a fund record together with the value the fund holds.
type FundDetails struct {
	Address     Address
	Authority   Address
	TotalRaised uint64
	Balance     uint64
	CreatedAt   time.Time
}

// DonateRequest is an authorized donation invocation.
type DonateRequest struct {
	Fund         Address
	Donor        Address
	Amount       uint64
	InvocationID string
}
