package domain

// BikeType classifies a bike for pricing and point bonuses.
type BikeType string

const (
	BikeTypeMountain BikeType = "Mountain Bike"
	BikeTypeCity     BikeType = "City Bike"
	BikeTypeElectric BikeType = "Electric Bike"
)

// BikeTypes lists all known types, in synthesis order.
var BikeTypes = []BikeType{BikeTypeMountain, BikeTypeCity, BikeTypeElectric}

// Bike represents a rentable bike. Synthesized bikes are ephemeral: their
// ids are only meaningful within the candidate set they were generated in.
// Fleet-backed bikes have stable ids.
type Bike struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Type      BikeType `json:"type"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Available bool     `json:"available"`
}
