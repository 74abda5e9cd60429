package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pedala/internal/domain"
	"pedala/internal/repository"
)

// RideScheduler manages the calendar of future rides.
type RideScheduler struct {
	rideRepo repository.ScheduledRideRepository
	now      func() time.Time
}

// NewRideScheduler creates a new RideScheduler.
func NewRideScheduler(rideRepo repository.ScheduledRideRepository) *RideScheduler {
	return &RideScheduler{rideRepo: rideRepo, now: time.Now}
}

// Schedule books a ride at the given place and time for the session user.
func (s *RideScheduler) Schedule(ctx context.Context, sess domain.Session, lat, lng float64, dateTime time.Time) (*domain.ScheduledRide, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	ride := &domain.ScheduledRide{
		ID:        uuid.New().String(),
		UserEmail: sess.UserEmail,
		Latitude:  lat,
		Longitude: lng,
		DateTime:  dateTime.UTC(),
	}

	if err := s.rideRepo.Add(ctx, ride); err != nil {
		return nil, err
	}
	return ride, nil
}

// ListForUser returns the session user's scheduled rides.
func (s *RideScheduler) ListForUser(ctx context.Context, sess domain.Session) ([]*domain.ScheduledRide, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	return s.rideRepo.ListByUser(ctx, sess.UserEmail)
}

// Cancel removes one of the session user's scheduled rides by id. Ids the
// user does not own are indistinguishable from unknown ids; both surface
// repository.ErrNotFound.
func (s *RideScheduler) Cancel(ctx context.Context, sess domain.Session, rideID string) error {
	if !sess.LoggedIn() {
		return ErrNotLoggedIn
	}

	rides, err := s.rideRepo.ListByUser(ctx, sess.UserEmail)
	if err != nil {
		return err
	}

	for _, ride := range rides {
		if ride.ID == rideID {
			return s.rideRepo.Remove(ctx, rideID)
		}
	}
	return repository.ErrNotFound
}

// Countdown reports the whole days and remaining whole hours until the
// given instant, or that it has already passed.
func (s *RideScheduler) Countdown(dateTime time.Time) domain.Countdown {
	diff := dateTime.Sub(s.now())
	if diff < 0 {
		return domain.Countdown{Expired: true}
	}

	days := int(diff.Hours()) / 24
	hours := int(diff.Hours()) % 24

	return domain.Countdown{Days: days, Hours: hours}
}
