package model

import (
	"time"

	"github.com/emergency-fund/fund-ledger/internal/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DonationEventCollection = "donation_events"

// DonationEventDocument is an outbox entry. It is written in the same
// transaction as the donation and later delivered to the queue.
type DonationEventDocument struct {
	InvocationID string             `bson:"_id"`
	Seq          primitive.ObjectID `bson:"seq"`
	FundAddress  string             `bson:"fund_address"`
	Donor        string             `bson:"donor"`
	Amount       Amount             `bson:"amount"`
	Timestamp    int64              `bson:"timestamp"`
	Status       types.EventStatus  `bson:"status"`
	Attempts     int                `bson:"attempts"`
	LastError    string             `bson:"last_error,omitempty"`
	PublishedAt  *time.Time         `bson:"published_at,omitempty"`
}

func NewDonationEventDocument(
	invocationID string, fund, donor types.Address, amount uint64, timestamp int64,
) *DonationEventDocument {
	return &DonationEventDocument{
		InvocationID: invocationID,
		Seq:          primitive.NewObjectID(),
		FundAddress:  fund.String(),
		Donor:        donor.String(),
		Amount:       Amount(amount),
		Timestamp:    timestamp,
		Status:       types.EventStatusPending,
	}
}

func (d *DonationEventDocument) ToDonationEvent() types.DonationEvent {
	return types.NewDonationEvent(d.InvocationID, d.FundAddress, d.Donor, d.Amount.Uint64(), d.Timestamp)
}
