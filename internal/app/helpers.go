package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"fastkart-parcels/internal/logx"
	"fastkart-parcels/internal/repository"
)

var newMongoClient = repository.Connect

const mongoAttemptTimeout = 3 * time.Second

func connectMongoWithRetry(ctx context.Context, logger logx.Logger, uri string, retries int, delay time.Duration) (*mongo.Client, error) {
	var lastErr error
	for i := 1; i <= retries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, mongoAttemptTimeout)
		client, err := newMongoClient(attemptCtx, uri)
		cancel()
		if err == nil {
			logger.Info("mongo connected", logx.Int("attempt", i))
			return client, nil
		}
		lastErr = err
		logger.Warn("mongo connect failed",
			logx.Int("attempt", i), logx.Int("retries", retries), logx.Err(err))
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("mongo connect failed after %d attempts: %w", retries, lastErr)
}

func disconnectMongo(client *mongo.Client, logger logx.Logger, timeout time.Duration) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect error", logx.Err(err))
	}
}
