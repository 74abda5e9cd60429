package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore serializes rent/return for a single user. The user store is
// read-modify-write, so two near-simultaneous operations against the same
// record would otherwise race (last write wins).
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

// AcquireUserLock attempts to acquire a lock for the given user.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireUserLock(ctx context.Context, userEmail string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:user:%s", userEmail)

	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseUserLock releases the lock for the given user.
func (s *LockStore) ReleaseUserLock(ctx context.Context, userEmail string) error {
	key := fmt.Sprintf("lock:user:%s", userEmail)

	return s.client.Del(ctx, key).Err()
}
