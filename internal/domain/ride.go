package domain

import "time"

// ScheduledRide is a future calendar ride placed on the map by a user.
// Independent of rentals; created and cancelled by user action.
type ScheduledRide struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	DateTime  time.Time `json:"date_time"`
}

// Countdown describes the time remaining until a scheduled ride.
type Countdown struct {
	Expired bool `json:"expired"`
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
}
