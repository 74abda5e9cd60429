package service

import (
	"context"

	"pedala/internal/config"
	"pedala/internal/domain"
	"pedala/internal/redis"
)

// LocationResolver resolves a usable position for an operation. Geolocation
// is best effort: explicit request coordinates win, then the user's last
// reported position, then the configured default. Failures along the chain
// never block the caller.
type LocationResolver struct {
	locations redis.LocationStoreInterface
	cfg       config.LocationConfig
}

// NewLocationResolver creates a new LocationResolver.
func NewLocationResolver(locations redis.LocationStoreInterface, cfg config.LocationConfig) *LocationResolver {
	return &LocationResolver{locations: locations, cfg: cfg}
}

// Resolve returns coordinates for the session, recording explicit ones as
// the user's last-known position.
func (r *LocationResolver) Resolve(ctx context.Context, sess domain.Session) domain.Coordinates {
	if sess.Location != nil {
		if r.locations != nil && sess.LoggedIn() {
			_ = r.locations.UpdateLocation(ctx, sess.UserEmail, sess.Location.Latitude, sess.Location.Longitude)
		}
		return *sess.Location
	}

	if r.locations != nil && sess.LoggedIn() {
		if last, err := r.locations.LastKnown(ctx, sess.UserEmail); err == nil && last != nil {
			return *last
		}
	}

	return domain.Coordinates{Latitude: r.cfg.DefaultLat, Longitude: r.cfg.DefaultLng}
}
