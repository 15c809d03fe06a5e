//go:build integration

package db_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/emergency-fund/fund-ledger/internal/db"
	"github.com/emergency-fund/fund-ledger/internal/db/model"
	"github.com/emergency-fund/fund-ledger/testutil"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const mongoDatabase = "test-database"

var (
	testDB       *db.Database
	testDbConfig *config.DbConfig
)

func TestMain(m *testing.M) {
	// first setup container with MongoDb
	dbConfig, cleanup, err := testutil.SetupMongoContainer(mongoDatabase)
	if err != nil {
		log.Fatalf("failed to setup mongo container: %v", err)
	}
	testDbConfig = dbConfig

	// apply migrations
	err = model.Setup(context.Background(), dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to init mongo database: %v", err)
	}

	// using config from container mongo initialize client used in tests
	testDB, err = setupClient(dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to setup client: %v", err)
	}

	// integration tests run on this line
	code := m.Run()
	cleanup()

	os.Exit(code)
}

func setupClient(cfg *config.DbConfig) (*db.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.New(ctx, *cfg)
}

// resetDatabase removes documents from every collection, indexes are kept
func resetDatabase(t *testing.T) {
	ctx := context.Background()

	client, err := mongo.Connect(ctx, testDbConfig.ToClientOptions())
	require.NoError(t, err)
	defer client.Disconnect(ctx) //nolint:errcheck

	database := client.Database(testDbConfig.DbName)
	for _, name := range []string{model.FundCollection, model.BalanceCollection, model.DonationEventCollection} {
		_, err := database.Collection(name).DeleteMany(ctx, bson.M{})
		require.NoError(t, err)
	}
}
