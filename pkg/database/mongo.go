package database

import (
	"context"
	"fmt"
	"time"

	"account-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the shared pooled Mongo client
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Collection returns a handle scoped to the configured database
func (db *DB) Collection(name string) *mongo.Collection {
	return db.db.Collection(name)
}

// Ping checks connectivity to the deployment
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, nil)
}

// Close disconnects the underlying client
func (db *DB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = db.client.Disconnect(ctx)
}

// InitDB connects to Mongo with pool bounds from config and ensures the
// users collection carries its unique name-pair index.
func InitDB(config utils.MongoConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(config.URI).
		SetMaxPoolSize(config.MaxConnections).
		SetMinPoolSize(config.MinConnections).
		SetConnectTimeout(5 * time.Second)

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	// Test connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancelPing()

	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo failed: %w", err)
	}

	db := &DB{
		client: client,
		db:     client.Database(config.Database),
	}

	if err := db.ensureUserIndexes(config.UsersCollection); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// ensureUserIndexes creates the unique compound index on (first_name, last_name).
// Duplicate inserts fail at the store instead of relying on the service-level
// availability check alone.
func (db *DB) ensureUserIndexes(collection string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "first_name", Value: 1},
			{Key: "last_name", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_first_last_name"),
	})
	if err != nil {
		return fmt.Errorf("create users index: %w", err)
	}

	return nil
}
