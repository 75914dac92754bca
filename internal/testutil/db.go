package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestMongoURI returns the MongoDB URI used by integration tests. Override
// with TEST_MONGO_URI to point tests at a different server.
func TestMongoURI() string {
	if uri := os.Getenv("TEST_MONGO_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

// SetupTestDB connects to the test MongoDB server and returns a database
// unique to this test. The database is dropped during cleanup. Tests that
// need a database are skipped when no server is reachable, so the suite
// still passes on machines without a local MongoDB.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(TestMongoURI()))
	if err != nil {
		t.Skipf("mongodb unavailable: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongodb unavailable: %v", err)
	}

	db := client.Database(fmt.Sprintf("schoolhub_test_%s", primitive.NewObjectID().Hex()))

	t.Cleanup(func() {
		cleanCtx, cleanCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanCancel()
		if err := db.Drop(cleanCtx); err != nil {
			t.Logf("failed to drop test database: %v", err)
		}
		_ = client.Disconnect(cleanCtx)
	})

	return db
}

// TestContext returns a context with a generous deadline for test database
// operations, cancelled automatically at test cleanup.
func TestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
