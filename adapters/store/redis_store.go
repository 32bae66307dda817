package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hashgate/hashgate/core"
	"github.com/hashgate/hashgate/ports"
)

const challengeKeyPrefix = "challenge:"

// RedisStore is a ChallengeStore backed by Redis, for deployments that
// run more than one instance behind a load balancer. Redis owns expiry
// through key TTLs, so an expired challenge reads the same as a missing
// one.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed challenge store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Put stores or overwrites the challenge for accountID
func (s *RedisStore) Put(ctx context.Context, accountID, challenge string, ttl time.Duration) error {
	if err := s.client.Set(ctx, challengeKeyPrefix+accountID, challenge, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store challenge: %w", err)
	}
	return nil
}

// Get returns the pending challenge if one exists and has not expired
func (s *RedisStore) Get(ctx context.Context, accountID string) (string, error) {
	challenge, err := s.client.Get(ctx, challengeKeyPrefix+accountID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", core.ErrChallengeNotFound
		}
		return "", fmt.Errorf("failed to read challenge: %w", err)
	}
	return challenge, nil
}

// Take removes and returns the pending challenge atomically via GETDEL
func (s *RedisStore) Take(ctx context.Context, accountID string) (string, error) {
	challenge, err := s.client.GetDel(ctx, challengeKeyPrefix+accountID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", core.ErrChallengeNotFound
		}
		return "", fmt.Errorf("failed to take challenge: %w", err)
	}
	return challenge, nil
}

// Delete removes the challenge for accountID; absent is not an error
func (s *RedisStore) Delete(ctx context.Context, accountID string) error {
	if err := s.client.Del(ctx, challengeKeyPrefix+accountID).Err(); err != nil {
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	return nil
}

var _ ports.ChallengeStore = (*RedisStore)(nil)
