package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pedala/internal/config"
	"pedala/internal/domain"
	"pedala/internal/service"
)

// ──────────────────────────────────────────────
// ANALYTICS EXPORT
// ──────────────────────────────────────────────

func exportFixtureRepo() *MockUserRepository {
	userRepo := NewMockUserRepository()

	start := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(60 * time.Minute)

	userRepo.AddUser(&domain.User{
		Name: "Ana", Email: "ana@example.com", Points: 120,
		Rentals: []domain.Rental{
			{ID: "r1", BikeID: 1, BikeName: "Bike 1", BikeType: domain.BikeTypeCity, StartTime: start, EndTime: &end, Points: 10},
			{ID: "r2", BikeID: 2, BikeName: "Bike 2", BikeType: domain.BikeTypeCity, StartTime: start, EndTime: &end, Points: 10},
			{ID: "r3", BikeID: 3, BikeName: "Bike 3", BikeType: domain.BikeTypeElectric, StartTime: start, EndTime: &end, Points: 15},
		},
	})
	userRepo.AddUser(&domain.User{
		Name: "Bruno", Email: "bruno@example.com", Points: 100,
		Rentals: []domain.Rental{
			{ID: "r4", BikeID: 4, BikeName: "Bike 4", BikeType: domain.BikeTypeMountain, StartTime: start, EndTime: &end, Points: 10},
		},
	})
	// No rentals, so no bike_usage row.
	userRepo.AddUser(&domain.User{Name: "Carla", Email: "carla@example.com", Points: 100})

	return userRepo
}

func TestBuildLocal_DocumentShape(t *testing.T) {
	t.Parallel()

	exporter := service.NewExportService(exportFixtureRepo(), nil, config.ExportConfig{}, 15)

	doc, err := exporter.BuildLocal(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Users) != 3 {
		t.Errorf("users = %d, want 3", len(doc.Users))
	}
	if len(doc.Rentals) != 4 {
		t.Errorf("rentals = %d, want 4", len(doc.Rentals))
	}
	if len(doc.BikeUsage) != 2 {
		t.Errorf("bike_usage = %d, want 2 (zero-rental user excluded)", len(doc.BikeUsage))
	}
	if len(doc.BikeTypeSummary) != 3 {
		t.Errorf("bike_type_summary = %d, want 3", len(doc.BikeTypeSummary))
	}

	var anaUsage *service.ExportBikeUsage
	for i := range doc.BikeUsage {
		if doc.BikeUsage[i].UserEmail == "ana@example.com" {
			anaUsage = &doc.BikeUsage[i]
		}
	}
	if anaUsage == nil {
		t.Fatal("no usage row for ana")
	}
	if anaUsage.TotalBikesUsed != 3 {
		t.Errorf("ana total bikes = %d, want 3", anaUsage.TotalBikesUsed)
	}
	if anaUsage.FavoriteBikeType != string(domain.BikeTypeCity) {
		t.Errorf("ana favorite type = %q, want City Bike", anaUsage.FavoriteBikeType)
	}
	if anaUsage.BikeTypeBreakdown[string(domain.BikeTypeCity)] != 2 {
		t.Errorf("ana city count = %d, want 2", anaUsage.BikeTypeBreakdown[string(domain.BikeTypeCity)])
	}
}

func TestBuildLocal_RentalRows(t *testing.T) {
	t.Parallel()

	exporter := service.NewExportService(exportFixtureRepo(), nil, config.ExportConfig{}, 15)

	doc, err := exporter.BuildLocal(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var row *service.ExportRental
	for i := range doc.Rentals {
		if doc.Rentals[i].BikeID == 1 {
			row = &doc.Rentals[i]
		}
	}
	if row == nil {
		t.Fatal("rental row for bike 1 not found")
	}

	if row.StartTime != "2025-05-01T10:00:00Z" {
		t.Errorf("start time = %q", row.StartTime)
	}
	if row.EndTime == nil || *row.EndTime != "2025-05-01T11:00:00Z" {
		t.Errorf("end time = %v", row.EndTime)
	}
	if row.DurationMinutes == nil || *row.DurationMinutes != 60 {
		t.Errorf("duration = %v, want 60", row.DurationMinutes)
	}
	// 60 minutes at 15 km/h.
	if row.EstimatedDistanceKm == nil || *row.EstimatedDistanceKm != 15 {
		t.Errorf("distance = %v, want 15", row.EstimatedDistanceKm)
	}
}

func TestBuildLocal_TypePercentagesSumToHundred(t *testing.T) {
	t.Parallel()

	exporter := service.NewExportService(exportFixtureRepo(), nil, config.ExportConfig{}, 15)

	doc, err := exporter.BuildLocal(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var total float64
	for _, summary := range doc.BikeTypeSummary {
		total += summary.Percentage
		if summary.BikeType == string(domain.BikeTypeCity) && summary.TotalUsage != 2 {
			t.Errorf("city usage = %d, want 2", summary.TotalUsage)
		}
	}
	if total < 99.99 || total > 100.01 {
		t.Errorf("percentages sum to %v, want 100", total)
	}
}

func TestBuildLocal_EmptyStore(t *testing.T) {
	t.Parallel()

	exporter := service.NewExportService(NewMockUserRepository(), nil, config.ExportConfig{}, 15)

	doc, err := exporter.BuildLocal(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Users) != 0 || len(doc.Rentals) != 0 || len(doc.BikeUsage) != 0 || len(doc.BikeTypeSummary) != 0 {
		t.Errorf("empty store should produce empty document: %+v", doc)
	}
}

func TestFetch_PrefersRemote(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(service.ExportDocument{
			Users: []service.ExportUser{{Name: "Remote", Email: "remote@example.com", Points: 1}},
		})
	}))
	defer server.Close()

	exporter := service.NewExportService(
		exportFixtureRepo(),
		&MockTokenReader{Token: "stored-token"},
		config.ExportConfig{BaseURL: server.URL, Timeout: time.Second},
		15,
	)

	doc, err := exporter.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer stored-token" {
		t.Errorf("authorization header = %q", gotAuth)
	}
	if len(doc.Users) != 1 || doc.Users[0].Email != "remote@example.com" {
		t.Errorf("expected remote document, got %+v", doc.Users)
	}
}

func TestFetch_FallsBackOnRemoteFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	exporter := service.NewExportService(
		exportFixtureRepo(),
		&MockTokenReader{Token: "stored-token"},
		config.ExportConfig{BaseURL: server.URL, Timeout: time.Second},
		15,
	)

	doc, err := exporter.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Local assembly carries the full user store.
	if len(doc.Users) != 3 {
		t.Errorf("expected local document with 3 users, got %d", len(doc.Users))
	}
}
