package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pedala/internal/config"
	"pedala/internal/domain"
	"pedala/internal/redis"
	"pedala/internal/repository"
)

// RentalService manages the rental lifecycle of a user: Idle, one open
// rental, back to Idle on return. At most one rental per user may be open
// at any time.
type RentalService struct {
	userRepo   repository.UserRepository
	candidates redis.CandidateStoreInterface
	locks      redis.LockStoreInterface
	pricing    *PricingCalculator
	cfg        config.PricingConfig
	maxRadiusM float64
	now        func() time.Time
}

// NewRentalService creates a new RentalService.
func NewRentalService(
	userRepo repository.UserRepository,
	candidates redis.CandidateStoreInterface,
	locks redis.LockStoreInterface,
	pricing *PricingCalculator,
	cfg config.PricingConfig,
	maxRadiusM float64,
) *RentalService {
	return &RentalService{
		userRepo:   userRepo,
		candidates: candidates,
		locks:      locks,
		pricing:    pricing,
		cfg:        cfg,
		maxRadiusM: maxRadiusM,
		now:        time.Now,
	}
}

// Rent opens a rental for the bike with the given id. The bike must be in
// the session user's current candidate set. The rental's points are the
// provisional base award; they are finalized on return.
func (s *RentalService) Rent(ctx context.Context, sess domain.Session, bikeID int) (*domain.Rental, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	s.lock(ctx, sess.UserEmail)
	defer s.unlock(ctx, sess.UserEmail)

	user, err := s.userRepo.GetByEmail(ctx, sess.UserEmail)
	if err != nil {
		return nil, err
	}

	if user.ActiveRentalIndex() >= 0 {
		return nil, ErrAlreadyRenting
	}

	bike, err := s.findCandidate(ctx, sess.UserEmail, bikeID)
	if err != nil {
		return nil, err
	}

	// Proximity is only enforced when the rider's position is known.
	if sess.Location != nil {
		distance := DistanceMeters(sess.Location.Latitude, sess.Location.Longitude, bike.Latitude, bike.Longitude)
		if distance > s.maxRadiusM {
			return nil, ErrTooFarFromBike
		}
	}

	rental := domain.Rental{
		ID:        uuid.New().String(),
		BikeID:    bike.ID,
		BikeName:  bike.Name,
		BikeType:  bike.Type,
		StartTime: s.now().UTC(),
		EndTime:   nil,
		Points:    s.cfg.BasePoints,
	}

	user.Rentals = append(user.Rentals, rental)

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return &rental, nil
}

// ReturnResult describes a finalized rental.
type ReturnResult struct {
	Rental          *domain.Rental
	DurationMinutes int
	EarnedPoints    int
	Cost            CostBreakdown
	TotalPoints     int
	Tier            domain.Tier
}

// Return closes the rental at the given index in the user's history. It
// stamps the end time, finalizes points and cost from the actual duration,
// and credits the user's balance. The discount is evaluated against the
// balance accrued before this rental's award.
func (s *RentalService) Return(ctx context.Context, sess domain.Session, rentalIndex int) (*ReturnResult, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	s.lock(ctx, sess.UserEmail)
	defer s.unlock(ctx, sess.UserEmail)

	user, err := s.userRepo.GetByEmail(ctx, sess.UserEmail)
	if err != nil {
		return nil, err
	}

	if rentalIndex < 0 || rentalIndex >= len(user.Rentals) {
		return nil, ErrNoActiveRental
	}

	rental := &user.Rentals[rentalIndex]
	if rental.Completed() {
		return nil, ErrNoActiveRental
	}

	endTime := s.now().UTC()
	rental.EndTime = &endTime

	durationMinutes := rental.DurationMinutes()
	earnedPoints := s.pricing.PointsForRental(durationMinutes, rental.BikeType)
	cost := s.pricing.CostForRental(durationMinutes, rental.BikeType, user.Points)

	rental.Points = earnedPoints
	finalPrice := cost.FinalPrice
	rental.Cost = &finalPrice

	user.Points += earnedPoints

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return &ReturnResult{
		Rental:          rental,
		DurationMinutes: durationMinutes,
		EarnedPoints:    earnedPoints,
		Cost:            cost,
		TotalPoints:     user.Points,
		Tier:            s.pricing.loyalty.TierFor(user.Points),
	}, nil
}

// History returns the user's rentals, oldest first.
func (s *RentalService) History(ctx context.Context, sess domain.Session) ([]domain.Rental, error) {
	if !sess.LoggedIn() {
		return nil, ErrNotLoggedIn
	}

	user, err := s.userRepo.GetByEmail(ctx, sess.UserEmail)
	if err != nil {
		return nil, err
	}
	return user.Rentals, nil
}

// findCandidate resolves a bike id against the user's last candidate set.
func (s *RentalService) findCandidate(ctx context.Context, userEmail string, bikeID int) (*domain.Bike, error) {
	if s.candidates == nil {
		return nil, ErrBikeNotFound
	}

	bikes, err := s.candidates.Get(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	for i := range bikes {
		if bikes[i].ID == bikeID {
			return &bikes[i], nil
		}
	}
	return nil, ErrBikeNotFound
}

// lock/unlock guard the read-modify-write against the user record. Best
// effort: when the lock store is unavailable the documented last-write-
// wins behavior applies.
func (s *RentalService) lock(ctx context.Context, userEmail string) {
	if s.locks == nil {
		return
	}
	_, _ = s.locks.AcquireUserLock(ctx, userEmail, s.cfg.RentalLockTTL)
}

func (s *RentalService) unlock(ctx context.Context, userEmail string) {
	if s.locks == nil {
		return
	}
	_ = s.locks.ReleaseUserLock(ctx, userEmail)
}
