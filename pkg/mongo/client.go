package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect dials MongoDB and verifies the connection with a ping. It retries
// up to cfg.RetryAttempts times, sleeping cfg.RetryInterval between
// attempts, and gives up with ErrConnectionFailed.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	for range cfg.RetryAttempts {
		client, err := mongo.Connect(
			options.Client().
				ApplyURI(cfg.ConnectionURL).
				SetConnectTimeout(cfg.ConnectTimeout).
				SetMaxPoolSize(cfg.MaxPoolSize).
				SetMinPoolSize(cfg.MinPoolSize).
				SetMaxConnIdleTime(cfg.MaxConnIdleTime).
				SetRetryWrites(cfg.RetryWrites).
				SetRetryReads(cfg.RetryReads),
		)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return client, nil
			}
			_ = client.Disconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrConnectionFailed
}

// ConnectDatabase dials MongoDB and returns a handle on the named database.
func ConnectDatabase(ctx context.Context, cfg Config, database string) (*mongo.Database, error) {
	client, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(database), nil
}
