package testutil

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/emergency-fund/fund-ledger/internal/config"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// this version corresponds to docker tag for mongodb
	// it should be in sync with mongo version used in production
	mongoVersion = "7.0.5"
	replicaSet   = "rs0"
)

// SetupMongoContainer starts a single node replica set (transactions are not
// available on standalone servers) and returns db credentials through
// config.DbConfig and a cleanup function that MUST be called in the end to
// cleanup docker resources.
func SetupMongoContainer(dbName string) (*config.DbConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}
	pool.MaxWait = 2 * time.Minute

	// there can be only 1 container with the same name, so we add
	// random string in the end in case there is still old container running
	suffix, err := RandomAlphaNum(3)
	if err != nil {
		return nil, nil, err
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "mongo-integration-tests-db-" + suffix,
		Repository: "mongo",
		Tag:        mongoVersion,
		Cmd:        []string{"--replSet", replicaSet, "--bind_ip_all"},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		err := pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	// get host port (randomly chosen) that is mapped to mongo port inside container
	hostPort := resource.GetPort("27017/tcp")
	address := fmt.Sprintf("mongodb://localhost:%s/?directConnection=true", hostPort)

	err = pool.Retry(func() error {
		return initiateReplicaSet(address)
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("replica set is not ready: %w", err)
	}

	return &config.DbConfig{
		DbName:  dbName,
		Address: address,
	}, cleanup, nil
}

// initiateReplicaSet is called repeatedly until the node reports itself as primary.
func initiateReplicaSet(address string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(address))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx) //nolint:errcheck

	admin := client.Database("admin")

	var hello struct {
		IsWritablePrimary bool   `bson:"isWritablePrimary"`
		SetName           string `bson:"setName"`
	}
	if err := admin.RunCommand(ctx, bson.D{{Key: "hello", Value: 1}}).Decode(&hello); err != nil {
		return err
	}
	if hello.IsWritablePrimary {
		return nil
	}

	if hello.SetName == "" {
		// the container advertises itself on localhost so the driver can reach it
		cmd := bson.D{{Key: "replSetInitiate", Value: bson.M{
			"_id": replicaSet,
			"members": bson.A{
				bson.M{"_id": 0, "host": "localhost:27017"},
			},
		}}}
		if err := admin.RunCommand(ctx, cmd).Err(); err != nil {
			return err
		}
	}

	return fmt.Errorf("node is not primary yet")
}
