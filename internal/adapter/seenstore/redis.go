package seenstore

import (
	"context"
	"time"

	"quizcraft/internal/cache"
	"quizcraft/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements domain.SeenStore on a Redis set per fingerprint.
// Expiry is handled server-side: every commit refreshes the key's TTL, so
// Sweep has nothing to do.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. It expects a connected *redis.Client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// GetSeen returns the seen-set stored for a fingerprint. A missing key is an
// empty set, not an error.
func (s *RedisStore) GetSeen(ctx context.Context, fingerprint string) (map[string]struct{}, error) {
	members, err := s.client.SMembers(ctx, cache.SeenSetKey(fingerprint)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		seen[m] = struct{}{}
	}
	return seen, nil
}

// Commit adds the union to the fingerprint's set and restarts its TTL in one
// pipeline round trip.
func (s *RedisStore) Commit(ctx context.Context, fingerprint string, seen map[string]struct{}) error {
	if len(seen) == 0 {
		return nil
	}
	members := make([]interface{}, 0, len(seen))
	for q := range seen {
		members = append(members, q)
	}

	key := cache.SeenSetKey(fingerprint)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}

// Sweep implements domain.SeenStore. Redis expires keys itself.
func (s *RedisStore) Sweep(_ context.Context) {}

// Ping checks the health of the Redis server.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

var _ domain.SeenStore = (*RedisStore)(nil)
