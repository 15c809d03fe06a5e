package db

import (
	"context"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/internal/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (db *Database) SaveDonationEvent(ctx context.Context, event *model.DonationEventDocument) error {
	_, err := db.collection(model.DonationEventCollection).InsertOne(ctx, event)
	if err != nil {
		if hasDuplicateKey(err) {
			return &DuplicateKeyError{
				Key:     event.InvocationID,
				Message: "donation event already exists",
			}
		}
		return err
	}

	return nil
}

// GetDonationEventsByFund returns the latest events of a fund, newest first.
func (db *Database) GetDonationEventsByFund(
	ctx context.Context, fundAddress string, limit int64,
) ([]*model.DonationEventDocument, error) {
	filter := bson.M{"fund_address": fundAddress}
	opts := options.Find().
		SetSort(bson.D{{Key: "seq", Value: -1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.DonationEventCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.DonationEventDocument
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// FindDispatchableDonationEvents returns pending events and failed events that
// still have attempts left, oldest first.
func (db *Database) FindDispatchableDonationEvents(
	ctx context.Context, maxAttempts int, limit int64,
) ([]*model.DonationEventDocument, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"status": types.EventStatusPending},
			bson.M{
				"status":   types.EventStatusFailed,
				"attempts": bson.M{"$lt": maxAttempts},
			},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "seq", Value: 1}}).
		SetLimit(limit)

	cursor, err := db.collection(model.DonationEventCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.DonationEventDocument
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (db *Database) MarkDonationEventPublished(ctx context.Context, invocationID string) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"status":       types.EventStatusPublished,
			"published_at": now,
		},
		"$unset": bson.M{"last_error": ""},
	}

	return db.updateDonationEvent(ctx, invocationID, update)
}

func (db *Database) MarkDonationEventFailed(ctx context.Context, invocationID string, reason string) error {
	update := bson.M{
		"$set": bson.M{
			"status":     types.EventStatusFailed,
			"last_error": reason,
		},
		"$inc": bson.M{"attempts": 1},
	}

	return db.updateDonationEvent(ctx, invocationID, update)
}

func (db *Database) updateDonationEvent(ctx context.Context, invocationID string, update bson.M) error {
	filter := bson.M{"_id": invocationID}
	res, err := db.collection(model.DonationEventCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     invocationID,
			Message: "donation event not found",
		}
	}

	return nil
}
