package currency

import (
	"fmt"

	"boostify/internal/models"
)

// Format renders an amount for display. The storefront UI depends on this
// exact shape: "9.50 ₼" for AZN, "$9.50" for everything else.
func Format(amount float64, code string) string {
	if code == models.CurrencyAZN {
		return fmt.Sprintf("%.2f ₼", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
