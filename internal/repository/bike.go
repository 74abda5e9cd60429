package repository

import (
	"context"

	"pedala/internal/domain"
)

// FleetRepository defines read access to a registered bike fleet. It is
// optional: deployments without a fleet database fall back to synthesized
// bikes.
type FleetRepository interface {
	// GetAvailable retrieves all bikes currently marked available.
	GetAvailable(ctx context.Context) ([]*domain.Bike, error)
}
