// Package testutil provides testing utilities and helpers for bookshelf-web.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/redis/go-redis/v9"

	"github.com/target/bookshelf-web/config"
)

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// envBool parses common truthy values from env vars.
func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// FixedTimeFunc returns a function that always returns the same time.
func FixedTimeFunc(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}

// TestTime returns a fixed time for testing.
func TestTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

// testRedisDB is flushed before each Redis test unless TEST_REDIS_DB says
// otherwise; it stays clear of DB 0 where a local server keeps sessions.
const testRedisDB = 15

const redisPingTimeout = 2 * time.Second

// TestRedisConfig reads the Redis settings for tests from TEST_REDIS_*, using
// the same keys as the server's REDIS_* settings. REDIS_URI is honored when
// TEST_REDIS_URI is unset.
func TestRedisConfig() (config.RedisConfig, error) {
	var cfg config.RedisConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "TEST_REDIS_"}); err != nil {
		return cfg, fmt.Errorf("parse TEST_REDIS_ settings: %w", err)
	}
	if _, ok := os.LookupEnv("TEST_REDIS_URI"); !ok {
		if uri := os.Getenv("REDIS_URI"); uri != "" {
			cfg.URI = uri
		}
	}
	if _, ok := os.LookupEnv("TEST_REDIS_DB"); !ok {
		cfg.DB = testRedisDB
	}
	cfg.Sanitize()
	return cfg, nil
}

// SetupTestRedis connects to the test database and empties it. The test is
// skipped when Redis is unreachable, or fails if TEST_REQUIRE_REDIS is set.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	cfg, err := TestRedisConfig()
	if err != nil {
		t.Fatal(err)
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.URI, Password: cfg.Password, DB: cfg.DB})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		if requireRedis() {
			t.Fatalf("redis not available at %s: %v", cfg.URI, err)
		}
		t.Skipf("redis not available at %s: %v", cfg.URI, err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		_ = client.Close()
		t.Fatalf("flush redis db %d: %v", cfg.DB, err)
	}
	return client
}
