package testutils

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// DefaultRedisURL points tests at database 15 so they never share keys with
// a development instance. TEST_REDIS_URL overrides it.
const DefaultRedisURL = "redis://localhost:6379/15"

// RedisClient connects to the test Redis instance, skipping the test when it
// is unreachable. The database is flushed before the test and again during
// cleanup.
func RedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		url = DefaultRedisURL
	}
	opts, err := redis.ParseURL(url)
	require.NoError(t, err, "invalid TEST_REDIS_URL")

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("redis unavailable at %s: %v", opts.Addr, err)
	}

	require.NoError(t, client.FlushDB(ctx).Err())
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

// ScoreCardKeys lists the score card keys currently stored, for asserting
// what a repository wrote
func ScoreCardKeys(t *testing.T, client redis.UniversalClient) []string {
	t.Helper()
	keys, err := client.Keys(context.Background(), "scorecard:*").Result()
	require.NoError(t, err)
	return keys
}
