package pricing

import "boostify/internal/models"

// ResolveTier returns the first tier whose quantity range contains quantity,
// scanning in stored order. A non-positive quantity or an empty tier set
// never matches. No side effects.
func ResolveTier(tiers []models.PriceTier, quantity int) (*models.PriceTier, bool) {
	if quantity <= 0 {
		return nil, false
	}
	for i := range tiers {
		t := &tiers[i]
		if quantity >= t.MinQuantity && quantity <= t.MaxQuantity {
			return t, true
		}
	}
	return nil, false
}
