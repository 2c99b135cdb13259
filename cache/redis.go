package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed Store, for clients that share a translation
// cache across devices or sessions.
type RedisStore struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	TTL       int    // Server-side TTL in seconds (0 = no expiration)
	KeyPrefix string // Prefix for all keys (default: "jobportal:")
}

// NewRedisStore creates a new Redis store with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisStoreFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing client.
func NewRedisStoreFromClient(client *redis.Client, ttlSeconds int, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "jobportal:"
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}

	return &RedisStore{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a value from Redis.
func (s *RedisStore) Get(key string) (string, bool) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// Treat transport errors as a cache miss
		return "", false
	}
	return val, true
}

// Set stores a value in Redis.
func (s *RedisStore) Set(key, value string) error {
	ctx := context.Background()
	return s.client.Set(ctx, s.keyPrefix+key, value, s.ttl).Err()
}

// Delete removes a key from Redis.
func (s *RedisStore) Delete(key string) error {
	ctx := context.Background()
	return s.client.Del(ctx, s.keyPrefix+key).Err()
}

// DeleteAll removes several keys in one round trip.
func (s *RedisStore) DeleteAll(keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, key := range keys {
		full[i] = s.keyPrefix + key
	}

	ctx := context.Background()
	return s.client.Del(ctx, full...).Err()
}

// Keys returns all keys under the store's prefix.
func (s *RedisStore) Keys() ([]string, error) {
	ctx := context.Background()

	var keys []string
	iter := s.client.Scan(ctx, 0, s.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val()[len(s.keyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping() error {
	ctx := context.Background()
	return s.client.Ping(ctx).Err()
}

// Verify RedisStore implements KeyedStore
var _ KeyedStore = (*RedisStore)(nil)
