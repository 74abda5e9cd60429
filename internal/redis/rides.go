package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"pedala/internal/domain"
	"pedala/internal/repository"
)

const scheduledRidesKey = "scheduledRides"

// RideStore implements repository.ScheduledRideRepository on Redis.
type RideStore struct {
	client *redis.Client
}

// NewRideStore creates a new RideStore.
func NewRideStore(client *redis.Client) *RideStore {
	return &RideStore{client: client}
}

// Add persists a new scheduled ride.
func (s *RideStore) Add(ctx context.Context, ride *domain.ScheduledRide) error {
	data, err := json.Marshal(ride)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, scheduledRidesKey, ride.ID, data).Err()
}

// ListByUser retrieves all rides owned by the given user.
func (s *RideStore) ListByUser(ctx context.Context, userEmail string) ([]*domain.ScheduledRide, error) {
	entries, err := s.client.HGetAll(ctx, scheduledRidesKey).Result()
	if err != nil {
		return nil, err
	}

	var rides []*domain.ScheduledRide
	for id, raw := range entries {
		var ride domain.ScheduledRide
		if err := json.Unmarshal([]byte(raw), &ride); err != nil {
			return nil, fmt.Errorf("%w: scheduled ride %s: %v", repository.ErrCorruptData, id, err)
		}
		if ride.UserEmail == userEmail {
			rides = append(rides, &ride)
		}
	}
	return rides, nil
}

// Remove deletes a ride by id.
func (s *RideStore) Remove(ctx context.Context, rideID string) error {
	removed, err := s.client.HDel(ctx, scheduledRidesKey, rideID).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return repository.ErrNotFound
	}
	return nil
}
