package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"pedala/internal/domain"
)

const userLocationKey = "users:locations"

// LocationStore keeps each user's last reported position using GEOADD.
// It backs the geolocation fallback chain: explicit request coordinates
// win, then the last-known position here, then the configured default.
type LocationStore struct {
	client *redis.Client
}

// NewLocationStore creates a new LocationStore.
func NewLocationStore(client *redis.Client) *LocationStore {
	return &LocationStore{client: client}
}

// UpdateLocation stores a user's position.
func (s *LocationStore) UpdateLocation(ctx context.Context, userEmail string, lat, lng float64) error {
	return s.client.GeoAdd(ctx, userLocationKey, &redis.GeoLocation{
		Name:      userEmail,
		Longitude: lng,
		Latitude:  lat,
	}).Err()
}

// LastKnown returns the user's last reported position, or nil if none was
// ever reported.
func (s *LocationStore) LastKnown(ctx context.Context, userEmail string) (*domain.Coordinates, error) {
	positions, err := s.client.GeoPos(ctx, userLocationKey, userEmail).Result()
	if err != nil {
		return nil, err
	}
	if len(positions) == 0 || positions[0] == nil {
		return nil, nil
	}
	return &domain.Coordinates{
		Latitude:  positions[0].Latitude,
		Longitude: positions[0].Longitude,
	}, nil
}
