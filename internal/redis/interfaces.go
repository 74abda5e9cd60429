package redis

import (
	"context"
	"time"

	"pedala/internal/domain"
	"pedala/internal/repository"
)

// CandidateStoreInterface defines the candidate bike cache operations.
type CandidateStoreInterface interface {
	Set(ctx context.Context, userEmail string, bikes []domain.Bike) error
	Get(ctx context.Context, userEmail string) ([]domain.Bike, error)
}

// LocationStoreInterface defines the user location operations.
type LocationStoreInterface interface {
	UpdateLocation(ctx context.Context, userEmail string, lat, lng float64) error
	LastKnown(ctx context.Context, userEmail string) (*domain.Coordinates, error)
}

// LockStoreInterface defines the per-user locking operations.
type LockStoreInterface interface {
	AcquireUserLock(ctx context.Context, userEmail string, ttl time.Duration) (bool, error)
	ReleaseUserLock(ctx context.Context, userEmail string) error
}

// Ensure concrete types implement interfaces.
var (
	_ repository.UserRepository          = (*UserStore)(nil)
	_ repository.ScheduledRideRepository = (*RideStore)(nil)
	_ CandidateStoreInterface            = (*CandidateStore)(nil)
	_ LocationStoreInterface             = (*LocationStore)(nil)
	_ LockStoreInterface                 = (*LockStore)(nil)
)
