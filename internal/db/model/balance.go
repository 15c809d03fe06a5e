package model

import "time"

const BalanceCollection = "balances"

type BalanceDocument struct {
	Address   string    `bson:"_id"`
	Amount    Amount    `bson:"amount"`
	UpdatedAt time.Time `bson:"updated_at"`
}
