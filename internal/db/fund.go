package db

import (
	"context"
	"errors"

	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (db *Database) SaveNewFund(ctx context.Context, fund *model.FundDocument) error {
	_, err := db.collection(model.FundCollection).InsertOne(ctx, fund)
	if err != nil {
		if hasDuplicateKey(err) {
			return &DuplicateKeyError{
				Key:     fund.Address,
				Message: "fund already exists",
			}
		}
		return err
	}

	return nil
}

func (db *Database) GetFundByAddress(ctx context.Context, address string) (*model.FundDocument, error) {
	filter := bson.M{"_id": address}
	res := db.collection(model.FundCollection).FindOne(ctx, filter)

	var fund model.FundDocument
	err := res.Decode(&fund)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     address,
				Message: "fund not found by address",
			}
		}
		return nil, err
	}

	return &fund, nil
}

// UpdateFundTotalRaised sets total_raised only if it still equals previous.
func (db *Database) UpdateFundTotalRaised(
	ctx context.Context, address string, previous, total uint64,
) error {
	filter := bson.M{
		"_id":          address,
		"total_raised": model.Amount(previous),
	}
	update := bson.M{
		"$set": bson.M{"total_raised": model.Amount(total)},
	}

	res, err := db.collection(model.FundCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     address,
			Message: "fund not found or total raised has changed",
		}
	}

	return nil
}
