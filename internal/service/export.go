package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"pedala/internal/config"
	"pedala/internal/domain"
	"pedala/internal/repository"
)

// ExportService assembles the analytics export document. When a remote
// export endpoint is configured it is tried first with a bounded timeout;
// any failure falls back to assembling the same shape from the local user
// store.
type ExportService struct {
	userRepo        repository.UserRepository
	tokens          TokenReader
	cfg             config.ExportConfig
	averageSpeedKmh float64
	client          *http.Client
}

// TokenReader supplies the stored bearer token for the remote call.
type TokenReader interface {
	GetToken(ctx context.Context) (string, error)
}

// NewExportService creates a new ExportService.
func NewExportService(userRepo repository.UserRepository, tokens TokenReader, cfg config.ExportConfig, averageSpeedKmh float64) *ExportService {
	return &ExportService{
		userRepo:        userRepo,
		tokens:          tokens,
		cfg:             cfg,
		averageSpeedKmh: averageSpeedKmh,
		client:          &http.Client{Timeout: cfg.Timeout},
	}
}

// ExportDocument is the analytics export shape.
type ExportDocument struct {
	Users           []ExportUser      `json:"users"`
	Rentals         []ExportRental    `json:"rentals"`
	BikeUsage       []ExportBikeUsage `json:"bike_usage"`
	BikeTypeSummary []ExportTypeUsage `json:"bike_type_summary"`
}

// ExportUser is one user row in the export.
type ExportUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int    `json:"points"`
}

// ExportRental is one rental row in the export.
type ExportRental struct {
	UserEmail           string   `json:"user_email"`
	UserName            string   `json:"user_name"`
	BikeID              int      `json:"bike_id"`
	BikeName            string   `json:"bike_name"`
	BikeType            string   `json:"bike_type"`
	StartTime           string   `json:"start_time"`
	EndTime             *string  `json:"end_time"`
	DurationMinutes     *int     `json:"duration_minutes"`
	EstimatedDistanceKm *float64 `json:"estimated_distance_km"`
	PointsEarned        int      `json:"points_earned"`
}

// ExportBikeUsage summarizes one user's bike-type usage.
type ExportBikeUsage struct {
	UserEmail         string         `json:"user_email"`
	UserName          string         `json:"user_name"`
	TotalBikesUsed    int            `json:"total_bikes_used"`
	FavoriteBikeType  string         `json:"favorite_bike_type"`
	BikeTypeBreakdown map[string]int `json:"bike_type_breakdown"`
}

// ExportTypeUsage is the global usage share of one bike type.
type ExportTypeUsage struct {
	BikeType   string  `json:"bike_type"`
	TotalUsage int     `json:"total_usage"`
	Percentage float64 `json:"percentage"`
}

// Fetch returns the export document, preferring the remote endpoint.
func (s *ExportService) Fetch(ctx context.Context) (*ExportDocument, error) {
	if s.cfg.BaseURL != "" {
		if doc, err := s.fetchRemote(ctx); err == nil {
			return doc, nil
		}
		// Remote failures are absorbed; the local assembly serves the
		// same shape.
	}
	return s.BuildLocal(ctx)
}

// fetchRemote GETs the configured export endpoint with bearer auth.
func (s *ExportService) fetchRemote(ctx context.Context) (*ExportDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/api/export/powerbi", nil)
	if err != nil {
		return nil, err
	}

	if s.tokens != nil {
		if token, err := s.tokens.GetToken(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export endpoint returned %d", resp.StatusCode)
	}

	var doc ExportDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// BuildLocal assembles the export document from the user store.
func (s *ExportService) BuildLocal(ctx context.Context) (*ExportDocument, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	doc := &ExportDocument{
		Users:           make([]ExportUser, 0, len(users)),
		Rentals:         []ExportRental{},
		BikeUsage:       []ExportBikeUsage{},
		BikeTypeSummary: []ExportTypeUsage{},
	}
	globalTypeUsage := make(map[string]int)

	for _, user := range users {
		doc.Users = append(doc.Users, ExportUser{
			Name:   user.Name,
			Email:  user.Email,
			Points: user.Points,
		})

		typeBreakdown := make(map[string]int)
		for i := range user.Rentals {
			rental := &user.Rentals[i]

			bikeType := string(rental.BikeType)
			if bikeType == "" {
				bikeType = string(domain.BikeTypeCity)
			}
			typeBreakdown[bikeType]++
			globalTypeUsage[bikeType]++

			doc.Rentals = append(doc.Rentals, s.exportRental(user, rental, bikeType))
		}

		if len(user.Rentals) == 0 {
			continue
		}

		doc.BikeUsage = append(doc.BikeUsage, ExportBikeUsage{
			UserEmail:         user.Email,
			UserName:          user.Name,
			TotalBikesUsed:    len(user.Rentals),
			FavoriteBikeType:  favoriteType(typeBreakdown),
			BikeTypeBreakdown: typeBreakdown,
		})
	}

	var totalUsage int
	for _, count := range globalTypeUsage {
		totalUsage += count
	}
	for bikeType, count := range globalTypeUsage {
		percentage := 0.0
		if totalUsage > 0 {
			percentage = float64(count) / float64(totalUsage) * 100
		}
		doc.BikeTypeSummary = append(doc.BikeTypeSummary, ExportTypeUsage{
			BikeType:   bikeType,
			TotalUsage: count,
			Percentage: percentage,
		})
	}
	sort.Slice(doc.BikeTypeSummary, func(i, j int) bool {
		return doc.BikeTypeSummary[i].BikeType < doc.BikeTypeSummary[j].BikeType
	})

	return doc, nil
}

func (s *ExportService) exportRental(user *domain.User, rental *domain.Rental, bikeType string) ExportRental {
	row := ExportRental{
		UserEmail:    user.Email,
		UserName:     user.Name,
		BikeID:       rental.BikeID,
		BikeName:     rental.BikeName,
		BikeType:     bikeType,
		StartTime:    rental.StartTime.Format(time.RFC3339),
		PointsEarned: rental.Points,
	}

	if rental.Completed() {
		end := rental.EndTime.Format(time.RFC3339)
		row.EndTime = &end

		minutes := rental.DurationMinutes()
		row.DurationMinutes = &minutes

		distance := math.Round(float64(minutes)/60*s.averageSpeedKmh*10) / 10
		row.EstimatedDistanceKm = &distance
	}
	return row
}

// favoriteType returns the most used bike type in a breakdown. Ties break
// by type name so the result is deterministic.
func favoriteType(breakdown map[string]int) string {
	var favorite string
	var max int
	for bikeType, count := range breakdown {
		if count > max || (count == max && (favorite == "" || bikeType < favorite)) {
			max = count
			favorite = bikeType
		}
	}
	return favorite
}
