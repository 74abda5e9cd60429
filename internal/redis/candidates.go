package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pedala/internal/domain"
)

const candidatePrefix = "candidates:"

// CandidateStore caches the last bike set shown to each user. Renting
// resolves bike ids against this set, so "rent bike 3" always refers to
// the bike the user was actually shown rather than a fresh random set.
type CandidateStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCandidateStore creates a new CandidateStore.
func NewCandidateStore(client *redis.Client, ttl time.Duration) *CandidateStore {
	return &CandidateStore{client: client, ttl: ttl}
}

// Set stores the candidate bike set for a user.
func (s *CandidateStore) Set(ctx context.Context, userEmail string, bikes []domain.Bike) error {
	data, err := json.Marshal(bikes)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, candidatePrefix+userEmail, data, s.ttl).Err()
}

// Get retrieves the candidate bike set for a user. Returns nil on a miss.
func (s *CandidateStore) Get(ctx context.Context, userEmail string) ([]domain.Bike, error) {
	data, err := s.client.Get(ctx, candidatePrefix+userEmail).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var bikes []domain.Bike
	if err := json.Unmarshal(data, &bikes); err != nil {
		return nil, err
	}
	return bikes, nil
}
