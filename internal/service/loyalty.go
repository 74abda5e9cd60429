package service

import (
	"pedala/internal/config"
	"pedala/internal/domain"
)

// LoyaltyLedger maps cumulative points to a tier and discount rate. Pure
// functions of the current balance; nothing here mutates state.
type LoyaltyLedger struct {
	cfg config.LoyaltyConfig
}

// NewLoyaltyLedger creates a new LoyaltyLedger.
func NewLoyaltyLedger(cfg config.LoyaltyConfig) *LoyaltyLedger {
	return &LoyaltyLedger{cfg: cfg}
}

// TierFor returns the loyalty tier for the given point balance. Thresholds
// are inclusive at the lower edge.
func (l *LoyaltyLedger) TierFor(points int) domain.Tier {
	switch {
	case points >= l.cfg.GoldMinPoints:
		return domain.TierGold
	case points >= l.cfg.SilverMinPoints:
		return domain.TierSilver
	default:
		return domain.TierBronze
	}
}

// DiscountFor returns the discount rate in [0,1) for the given balance.
func (l *LoyaltyLedger) DiscountFor(points int) float64 {
	switch l.TierFor(points) {
	case domain.TierGold:
		return l.cfg.GoldDiscount
	case domain.TierSilver:
		return l.cfg.SilverDiscount
	default:
		return 0
	}
}
