package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyDedup is dedup:{scope}:{event id}.
const KeyDedup = "dedup:%s:%s"

const DefaultDedupTTL = 48 * time.Hour

// DedupClient is the subset of *redis.Client the store needs.
type DedupClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type DedupStore struct {
	client DedupClient
	scope  string
	ttl    time.Duration
}

func NewDedupStore(client DedupClient, scope string, ttl time.Duration) *DedupStore {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &DedupStore{
		client: client,
		scope:  scope,
		ttl:    ttl,
	}
}

// Claim returns true the first time an event id is seen within the TTL.
func (s *DedupStore) Claim(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(eventID), "1", s.ttl).Result()
	if err != nil {
		return false, wrapRedisErr(err, "claim dedup key")
	}
	return ok, nil
}

// Forget releases a claim so a failed delivery can be retried.
func (s *DedupStore) Forget(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, s.key(eventID)).Err(); err != nil {
		return wrapRedisErr(err, "delete dedup key")
	}
	return nil
}

func (s *DedupStore) key(eventID string) string {
	return fmt.Sprintf(KeyDedup, s.scope, eventID)
}
