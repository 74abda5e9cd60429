package service

import (
	"testing"

	"pedala/internal/config"
	"pedala/internal/domain"
)

func testPricingConfig() config.PricingConfig {
	return config.PricingConfig{
		MountainPerMinute: 0.25,
		CityPerMinute:     0.20,
		ElectricPerMinute: 0.40,
		BasePoints:        10,
		LongRideBonus:     5,
		ElectricBonus:     5,
		AverageSpeedKmh:   15,
	}
}

func testLoyaltyConfig() config.LoyaltyConfig {
	return config.LoyaltyConfig{
		SilverMinPoints: 200,
		GoldMinPoints:   500,
		SilverDiscount:  0.10,
		GoldDiscount:    0.20,
	}
}

func newTestPricing() *PricingCalculator {
	return NewPricingCalculator(testPricingConfig(), NewLoyaltyLedger(testLoyaltyConfig()))
}

func TestPointsForRental(t *testing.T) {
	t.Parallel()

	pricing := newTestPricing()

	tests := []struct {
		name            string
		durationMinutes int
		bikeType        domain.BikeType
		want            int
	}{
		{"short city ride earns base only", 45, domain.BikeTypeCity, 10},
		{"exactly one hour earns base only", 60, domain.BikeTypeCity, 10},
		{"one block past the hour", 90, domain.BikeTypeCity, 15},
		{"partial block does not count", 89, domain.BikeTypeCity, 10},
		{"two blocks past the hour", 120, domain.BikeTypeCity, 20},
		{"electric bonus", 30, domain.BikeTypeElectric, 15},
		{"electric bonus stacks with duration bonus", 90, domain.BikeTypeElectric, 20},
		{"zero duration earns base only", 0, domain.BikeTypeCity, 10},
		{"mountain has no type bonus", 30, domain.BikeTypeMountain, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.PointsForRental(tt.durationMinutes, tt.bikeType)
			if got != tt.want {
				t.Errorf("PointsForRental(%d, %q) = %d, want %d", tt.durationMinutes, tt.bikeType, got, tt.want)
			}
		})
	}
}

func TestCostForRental_NoDiscount(t *testing.T) {
	t.Parallel()

	pricing := newTestPricing()

	cost := pricing.CostForRental(60, domain.BikeTypeMountain, 0)

	if cost.BasePrice != 15.00 {
		t.Errorf("base price = %.2f, want 15.00", cost.BasePrice)
	}
	if cost.Discount != 0 {
		t.Errorf("discount = %.2f, want 0.00", cost.Discount)
	}
	if cost.FinalPrice != 15.00 {
		t.Errorf("final price = %.2f, want 15.00", cost.FinalPrice)
	}
	if cost.DiscountPercentage != 0 {
		t.Errorf("discount percentage = %.0f, want 0", cost.DiscountPercentage)
	}
}

func TestCostForRental_GoldDiscount(t *testing.T) {
	t.Parallel()

	pricing := newTestPricing()

	cost := pricing.CostForRental(60, domain.BikeTypeMountain, 500)

	if cost.BasePrice != 15.00 {
		t.Errorf("base price = %.2f, want 15.00", cost.BasePrice)
	}
	if cost.Discount != 3.00 {
		t.Errorf("discount = %.2f, want 3.00", cost.Discount)
	}
	if cost.FinalPrice != 12.00 {
		t.Errorf("final price = %.2f, want 12.00", cost.FinalPrice)
	}
	if cost.DiscountPercentage != 20 {
		t.Errorf("discount percentage = %.0f, want 20", cost.DiscountPercentage)
	}
}

func TestCostForRental_ZeroDuration(t *testing.T) {
	t.Parallel()

	pricing := newTestPricing()

	cost := pricing.CostForRental(0, domain.BikeTypeCity, 250)

	if cost.BasePrice != 0 || cost.FinalPrice != 0 || cost.Discount != 0 {
		t.Errorf("zero duration should be free, got %+v", cost)
	}
}

func TestCostForRental_UnknownTypeUsesCityRate(t *testing.T) {
	t.Parallel()

	pricing := newTestPricing()

	unknown := pricing.CostForRental(30, domain.BikeType("Cargo Bike"), 0)
	city := pricing.CostForRental(30, domain.BikeTypeCity, 0)

	if unknown.BasePrice != city.BasePrice {
		t.Errorf("unknown type base price = %.2f, want city rate %.2f", unknown.BasePrice, city.BasePrice)
	}
}

func TestCostForRental_RoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	pricing := newTestPricing()

	// 7 minutes of city riding at silver: 1.40 base, 0.14 discount, 1.26 final.
	cost := pricing.CostForRental(7, domain.BikeTypeCity, 200)

	if cost.BasePrice != 1.40 {
		t.Errorf("base price = %v, want 1.40", cost.BasePrice)
	}
	if cost.Discount != 0.14 {
		t.Errorf("discount = %v, want 0.14", cost.Discount)
	}
	if cost.FinalPrice != 1.26 {
		t.Errorf("final price = %v, want 1.26", cost.FinalPrice)
	}
}
