package postgres

import (
	"context"
	"database/sql"

	"pedala/internal/domain"
)

// FleetRepository implements repository.FleetRepository using PostgreSQL.
type FleetRepository struct {
	db *sql.DB
}

// NewFleetRepository creates a new FleetRepository.
func NewFleetRepository(db *sql.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

// GetAvailable retrieves all bikes currently marked available.
func (r *FleetRepository) GetAvailable(ctx context.Context) ([]*domain.Bike, error) {
	query := `SELECT id, name, type, latitude, longitude, available FROM bikes WHERE available = true ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bikes []*domain.Bike
	for rows.Next() {
		var bike domain.Bike
		var bikeType string
		if err := rows.Scan(&bike.ID, &bike.Name, &bikeType, &bike.Latitude, &bike.Longitude, &bike.Available); err != nil {
			return nil, err
		}
		bike.Type = domain.BikeType(bikeType)
		bikes = append(bikes, &bike)
	}
	return bikes, rows.Err()
}
