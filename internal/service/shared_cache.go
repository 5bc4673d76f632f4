package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const sharedCachePrefix = "prevent:risk:"

// SharedCache is the second result cache tier, shared between instances.
// Get returns nil without an error on a miss.
type SharedCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// RedisCache stores encoded results in Redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects lazily to the server named by a redis:// URL.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("redis ttl must be positive, got %s", ttl)
	}

	// Fail fast on an unreachable server.
	opts.MaxRetries = -1
	opts.DialTimeout = 500 * time.Millisecond
	opts.ReadTimeout = 250 * time.Millisecond
	opts.WriteTimeout = 250 * time.Millisecond

	return &RedisCache{client: redis.NewClient(opts), ttl: ttl}, nil
}

// Get returns the cached value for key, or nil on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := c.client.Get(ctx, sharedCachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return b, err
}

// Set stores value under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, sharedCachePrefix+key, value, c.ttl).Err()
}

// Ping checks that the server is reachable.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// breakerCache short-circuits the shared cache after repeated failures.
type breakerCache struct {
	next    SharedCache
	breaker *gobreaker.CircuitBreaker
}

func newBreakerCache(next SharedCache, logger *logrus.Logger) *breakerCache {
	settings := gobreaker.Settings{
		Name:        "shared-result-cache",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Shared cache circuit breaker changed state")
		},
	}
	return &breakerCache{next: next, breaker: gobreaker.NewCircuitBreaker(settings)}
}

func (c *breakerCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := c.breaker.Execute(func() (interface{}, error) {
		return c.next.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	b, _ := v.([]byte)
	return b, nil
}

func (c *breakerCache) Set(ctx context.Context, key string, value []byte) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.next.Set(ctx, key, value)
	})
	return err
}

func (c *breakerCache) State() gobreaker.State {
	return c.breaker.State()
}
