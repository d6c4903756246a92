package repository

import (
	"context"
	"testing"
	"time"

	"main/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const testDB = "growthhub_test"

// newTestClient connects to the local test deployment, skipping the test when
// none is reachable.
func newTestClient(t *testing.T) *mongo.Client {
	t.Helper()

	uri := utils.GetEnvAsString("MONGO_TEST_URI", "mongodb://localhost:27017")
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	return client
}

// setupCollections prepares an indexed test database and returns a cleanup
// function dropping everything the test touched.
func setupCollections(t *testing.T) (*mongo.Client, func()) {
	t.Helper()

	client := newTestClient(t)
	db := client.Database(testDB)

	if err := db.Drop(context.Background()); err != nil {
		t.Fatalf("Failed to reset test database: %v", err)
	}
	if err := SetupIndexes(db); err != nil {
		t.Fatalf("Failed to setup indexes: %v", err)
	}

	cleanup := func() {
		if err := db.Drop(context.Background()); err != nil {
			t.Errorf("Failed to drop test database: %v", err)
		}
		if err := client.Disconnect(context.Background()); err != nil {
			t.Errorf("Failed to disconnect from MongoDB: %v", err)
		}
	}
	return client, cleanup
}
