package repository

import (
	"context"

	"pedala/internal/domain"
)

// ScheduledRideRepository defines the persistence operations for scheduled
// rides.
type ScheduledRideRepository interface {
	// Add persists a new scheduled ride.
	Add(ctx context.Context, ride *domain.ScheduledRide) error

	// ListByUser retrieves all rides owned by the given user.
	ListByUser(ctx context.Context, userEmail string) ([]*domain.ScheduledRide, error)

	// Remove deletes a ride by id. Returns ErrNotFound for unknown ids.
	Remove(ctx context.Context, rideID string) error
}
