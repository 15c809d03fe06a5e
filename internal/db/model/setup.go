package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	setupTimeout = 30 * time.Second
	// namespaceExistsErrCode is returned by createCollection for existing collections
	namespaceExistsErrCode = 48
)

type index struct {
	Keys   bson.D
	Unique bool
}

var collections = map[string][]index{
	FundCollection:    nil,
	BalanceCollection: nil,
	DonationEventCollection: {
		{Keys: bson.D{{Key: "fund_address", Value: 1}, {Key: "seq", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "seq", Value: 1}}},
	},
}

// Setup creates collections and indexes. Collections are created up-front
// because the donation transaction writes to all of them.
func Setup(ctx context.Context, cfg *config.DbConfig) error {
	ctx, cancel := context.WithTimeout(ctx, setupTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.ToClientOptions())
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to disconnect setup client")
		}
	}()

	database := client.Database(cfg.DbName)

	for name, idxs := range collections {
		if err := createCollection(ctx, database, name); err != nil {
			return err
		}
		for _, idx := range idxs {
			if err := createIndex(ctx, database, name, idx); err != nil {
				return err
			}
		}
	}

	log.Info().Msg("Collections and indexes created successfully.")
	return nil
}

func createCollection(ctx context.Context, database *mongo.Database, collectionName string) error {
	err := database.CreateCollection(ctx, collectionName)
	if err == nil {
		log.Debug().Str("collection", collectionName).Msg("Collection created")
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == namespaceExistsErrCode {
		return nil
	}
	return fmt.Errorf("failed to create collection %s: %w", collectionName, err)
}

func createIndex(ctx context.Context, database *mongo.Database, collectionName string, idx index) error {
	indexModel := mongo.IndexModel{
		Keys:    idx.Keys,
		Options: options.Index().SetUnique(idx.Unique),
	}

	if _, err := database.Collection(collectionName).Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", collectionName, err)
	}

	log.Debug().Str("collection", collectionName).Msg("Index created")
	return nil
}
