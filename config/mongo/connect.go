package mongo

import (
	"context"
	"fmt"
	"sync"

	"mango-alerts-srv/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	mu       sync.RWMutex
	instance *mongo.Client
)

// Connect establishes the MongoDB connection and returns a handle to the
// configured database. The client is kept process-wide so a second call
// returns the existing connection.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance.Database(cfg.DBName), nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.ConnectionString()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	instance = client
	return client.Database(cfg.DBName), nil
}

// Disconnect closes the MongoDB connection.
func Disconnect(ctx context.Context) error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}

	if err := instance.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to close MongoDB connection: %w", err)
	}
	instance = nil
	return nil
}

// HealthCheck pings the primary to verify the connection is alive.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MongoDB client not initialized")
	}
	if err := instance.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDB health check failed: %w", err)
	}
	return nil
}
