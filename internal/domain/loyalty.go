package domain

// Tier is the loyalty level derived from a user's cumulative points. It is
// computed, never stored.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)
