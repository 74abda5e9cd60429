package domain

import "time"

// Rental represents one bike checkout. Points are provisional (the base
// award) until the bike is returned, at which point points and cost are
// finalized from the actual duration.
type Rental struct {
	ID        string     `json:"id"`
	BikeID    int        `json:"bike_id"`
	BikeName  string     `json:"bike_name"`
	BikeType  BikeType   `json:"bike_type"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Points    int        `json:"points"`
	Cost      *float64   `json:"cost,omitempty"`
}

// Completed reports whether the rental has been returned.
func (r *Rental) Completed() bool {
	return r.EndTime != nil
}

// DurationMinutes returns the whole minutes between start and end time.
// Zero for open rentals; never negative since EndTime is stamped after
// StartTime.
func (r *Rental) DurationMinutes() int {
	if r.EndTime == nil {
		return 0
	}
	return int(r.EndTime.Sub(r.StartTime).Minutes())
}
