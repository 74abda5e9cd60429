package service

import (
	"context"
	"math"
	"sort"

	"pedala/internal/domain"
	"pedala/internal/repository"
)

// RankingStrategy selects the leaderboard ordering.
type RankingStrategy string

const (
	// RankByPoints orders by cumulative points, descending. Default.
	RankByPoints RankingStrategy = "points"

	// RankByDistance orders by estimated total distance, descending.
	RankByDistance RankingStrategy = "distance"
)

// RankingEntry is one leaderboard row. Distance is estimated from
// completed rental durations at the configured average speed.
type RankingEntry struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Points          int     `json:"points"`
	TotalRentals    int     `json:"total_rentals"`
	TotalDistanceKm float64 `json:"total_distance_km"`
}

// RankingAggregator builds the leaderboard from all users' rental records.
// Every registered user is included; users with no completed rentals rank
// with zero distance and zero rentals. Ties break by name, then email,
// ascending, so the ordering is deterministic.
type RankingAggregator struct {
	userRepo        repository.UserRepository
	averageSpeedKmh float64
}

// NewRankingAggregator creates a new RankingAggregator.
func NewRankingAggregator(userRepo repository.UserRepository, averageSpeedKmh float64) *RankingAggregator {
	return &RankingAggregator{userRepo: userRepo, averageSpeedKmh: averageSpeedKmh}
}

// BuildRanking derives the leaderboard using the given strategy. Unknown
// strategies fall back to points ordering.
func (a *RankingAggregator) BuildRanking(ctx context.Context, strategy RankingStrategy) ([]RankingEntry, error) {
	users, err := a.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, a.entryFor(user))
	}

	sort.Slice(entries, func(i, j int) bool {
		ei, ej := entries[i], entries[j]
		switch strategy {
		case RankByDistance:
			if ei.TotalDistanceKm != ej.TotalDistanceKm {
				return ei.TotalDistanceKm > ej.TotalDistanceKm
			}
		default:
			if ei.Points != ej.Points {
				return ei.Points > ej.Points
			}
		}
		if ei.Name != ej.Name {
			return ei.Name < ej.Name
		}
		return ei.Email < ej.Email
	})

	return entries, nil
}

// entryFor summarizes one user's completed rentals.
func (a *RankingAggregator) entryFor(user *domain.User) RankingEntry {
	var completed int
	var totalHours float64

	for i := range user.Rentals {
		rental := &user.Rentals[i]
		if !rental.Completed() {
			continue
		}
		completed++
		totalHours += rental.EndTime.Sub(rental.StartTime).Hours()
	}

	return RankingEntry{
		Name:            user.Name,
		Email:           user.Email,
		Points:          user.Points,
		TotalRentals:    completed,
		TotalDistanceKm: round1(totalHours * a.averageSpeedKmh),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
