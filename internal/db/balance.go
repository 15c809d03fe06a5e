package db

import (
	"context"
	"errors"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetBalance returns the stored amount for address. A missing entry is a
// zero balance, not an error.
func (db *Database) GetBalance(ctx context.Context, address string) (uint64, error) {
	filter := bson.M{"_id": address}
	res := db.collection(model.BalanceCollection).FindOne(ctx, filter)

	var balance model.BalanceDocument
	err := res.Decode(&balance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}

	return balance.Amount.Uint64(), nil
}

func (db *Database) SetBalance(ctx context.Context, address string, amount uint64) error {
	filter := bson.M{"_id": address}
	update := bson.M{
		"$set": bson.M{
			"amount":     model.Amount(amount),
			"updated_at": time.Now().UTC(),
		},
	}

	_, err := db.collection(model.BalanceCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
