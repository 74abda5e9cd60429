package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"pedala/internal/config"
	"pedala/internal/domain"
	"pedala/internal/repository"
)

const (
	earthRadiusKm = 6371.0

	defaultNearbyCount = 10
	maxNearbyCount     = 100
)

// BikeLocator finds bikes near a point. When a fleet repository is
// configured it serves registered bikes within the fleet radius; otherwise
// it synthesizes a fresh random set per call, jittered around the query
// point. Synthesized sets are intentionally unseeded, so bike ids are only
// stable within one candidate set.
type BikeLocator struct {
	cfg   config.LocationConfig
	fleet repository.FleetRepository // nil when no fleet database is configured
}

// NewBikeLocator creates a new BikeLocator.
func NewBikeLocator(cfg config.LocationConfig, fleet repository.FleetRepository) *BikeLocator {
	return &BikeLocator{cfg: cfg, fleet: fleet}
}

// Nearby returns up to count bikes around the given point. The count is
// clamped so an arbitrary query parameter cannot request an unbounded set.
func (l *BikeLocator) Nearby(ctx context.Context, lat, lng float64, count int) ([]domain.Bike, error) {
	if count <= 0 {
		count = defaultNearbyCount
	}
	if count > maxNearbyCount {
		count = maxNearbyCount
	}

	if l.fleet != nil {
		return l.nearbyFleet(ctx, lat, lng)
	}

	return l.synthesize(lat, lng, count), nil
}

// nearbyFleet filters registered bikes by haversine distance.
func (l *BikeLocator) nearbyFleet(ctx context.Context, lat, lng float64) ([]domain.Bike, error) {
	all, err := l.fleet.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	var bikes []domain.Bike
	for _, b := range all {
		if DistanceMeters(lat, lng, b.Latitude, b.Longitude) <= l.cfg.FleetRadiusM {
			bikes = append(bikes, *b)
		}
	}
	return bikes, nil
}

// synthesize generates count random bikes near the center point.
func (l *BikeLocator) synthesize(lat, lng float64, count int) []domain.Bike {
	bikes := make([]domain.Bike, 0, count)
	for i := 0; i < count; i++ {
		bikes = append(bikes, domain.Bike{
			ID:        i + 1,
			Name:      fmt.Sprintf("Bike %d", i+1),
			Type:      domain.BikeTypes[rand.Intn(len(domain.BikeTypes))],
			Latitude:  lat + (rand.Float64()-0.5)*l.cfg.BikeJitterDeg/2,
			Longitude: lng + (rand.Float64()-0.5)*l.cfg.BikeJitterDeg/2,
			Available: true,
		})
	}
	return bikes
}

// DistanceMeters returns the great-circle distance in meters between two
// points specified in decimal degrees, via the haversine formula.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * 1000
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
