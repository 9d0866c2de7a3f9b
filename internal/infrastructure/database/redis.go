package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"

	"github.com/meetpilot-team/meetpilot/pkg/config"
)

// The document backend shares one process-wide client, created on first use
// and reused for the process lifetime. sync.Once makes concurrent first-use
// races converge on a single handle.
var (
	documentOnce   sync.Once
	documentClient *redis.Client
	documentErr    error
)

// DocumentClient returns the lazily-initialized Redis client for the
// document store. The first caller pays the connection cost; a failed
// connect is sticky for the process, matching the fail-fast behavior of the
// relational backend.
func DocumentClient(cfg *config.Config) (*redis.Client, error) {
	documentOnce.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		// A short bounded retry absorbs store startup races in compose
		// environments. Requests themselves are never retried.
		ping := func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err()
		}
		policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)
		if err := backoff.Retry(ping, policy); err != nil {
			documentErr = fmt.Errorf("failed to connect to redis: %w", err)
			return
		}

		log.Println("✅ Document store connected successfully")
		documentClient = client
	})
	return documentClient, documentErr
}
