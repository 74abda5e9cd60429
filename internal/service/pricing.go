package service

import (
	"math"

	"pedala/internal/config"
	"pedala/internal/domain"
)

// PricingCalculator computes rental costs and point awards. All methods
// are pure and deterministic.
type PricingCalculator struct {
	cfg     config.PricingConfig
	loyalty *LoyaltyLedger
}

// NewPricingCalculator creates a new PricingCalculator.
func NewPricingCalculator(cfg config.PricingConfig, loyalty *LoyaltyLedger) *PricingCalculator {
	return &PricingCalculator{cfg: cfg, loyalty: loyalty}
}

// CostBreakdown is the result of pricing a rental. Monetary values are
// rounded to 2 decimal places.
type CostBreakdown struct {
	BasePrice          float64 `json:"base_price"`
	Discount           float64 `json:"discount"`
	FinalPrice         float64 `json:"final_price"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

// PointsForRental returns the points earned by a completed rental: the
// base award, plus a bonus per full 30-minute block beyond the first hour,
// plus a flat bonus for electric bikes.
func (p *PricingCalculator) PointsForRental(durationMinutes int, bikeType domain.BikeType) int {
	points := p.cfg.BasePoints

	if durationMinutes > 60 {
		points += ((durationMinutes - 60) / 30) * p.cfg.LongRideBonus
	}

	if bikeType == domain.BikeTypeElectric {
		points += p.cfg.ElectricBonus
	}

	return points
}

// CostForRental prices a rental. The discount rate comes from the user's
// loyalty standing; callers pass the point balance accrued from prior
// rentals, not including the award for the rental being priced.
func (p *PricingCalculator) CostForRental(durationMinutes int, bikeType domain.BikeType, loyaltyPoints int) CostBreakdown {
	basePrice := float64(durationMinutes) * p.perMinuteRate(bikeType)

	discountRate := p.loyalty.DiscountFor(loyaltyPoints)
	finalPrice := basePrice * (1 - discountRate)

	return CostBreakdown{
		BasePrice:          round2(basePrice),
		Discount:           round2(basePrice * discountRate),
		FinalPrice:         round2(finalPrice),
		DiscountPercentage: discountRate * 100,
	}
}

// perMinuteRate returns the rate for a bike type. Unknown types price at
// the city rate.
func (p *PricingCalculator) perMinuteRate(bikeType domain.BikeType) float64 {
	switch bikeType {
	case domain.BikeTypeMountain:
		return p.cfg.MountainPerMinute
	case domain.BikeTypeElectric:
		return p.cfg.ElectricPerMinute
	default:
		return p.cfg.CityPerMinute
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
