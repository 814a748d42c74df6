// Package pricing computes order prices from a service's tier table, the
// platform fee configuration and an optional currency conversion. Business
// rule violations (no matching tier, malformed tier data, zero quantity)
// degrade to a zero quote instead of an error so the purchase flow is never
// blocked by a pricing hiccup.
package pricing

import (
	"context"
	"strings"

	"boostify/internal/models"

	"github.com/shopspring/decimal"
)

// SourceCurrency is the currency tier prices are expressed in.
const SourceCurrency = models.CurrencyUSD

// RateConverter converts an amount between currencies, reporting whether a
// hard-coded fallback rate was used instead of a stored one.
type RateConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (converted float64, usedFallback bool)
}

type Calculator struct {
	fees  *FeeCalculator
	rates RateConverter
}

func NewCalculator(rates RateConverter) *Calculator {
	return &Calculator{
		fees:  NewFeeCalculator(),
		rates: rates,
	}
}

// Calculate resolves the tier for quantity, applies fees in USD and converts
// to targetCurrency when it differs. The only I/O is the conversion-rate
// lookup, and its failure is absorbed by the converter's fallback.
func (c *Calculator) Calculate(ctx context.Context, tiers []models.PriceTier, quantity int, cfg FeeConfig, targetCurrency string) Quote {
	if targetCurrency == "" {
		targetCurrency = SourceCurrency
	}
	quote := Quote{Currency: targetCurrency}

	tier, ok := ResolveTier(tiers, quantity)
	if !ok {
		return quote
	}
	if tier.UnitBasis <= 0 {
		return quote
	}
	unitPrice, err := decimal.NewFromString(strings.TrimSpace(tier.UnitPrice))
	if err != nil || unitPrice.IsNegative() {
		return quote
	}

	costPerUnit := unitPrice.InexactFloat64() / float64(tier.UnitBasis)
	baseCost := costPerUnit * float64(quantity)

	amount := c.fees.Apply(baseCost, cfg)
	if targetCurrency != SourceCurrency {
		amount, quote.UsedFallbackRate = c.rates.Convert(ctx, amount, SourceCurrency, targetCurrency)
	}
	if amount < 0 {
		amount = 0
	}
	quote.Amount = amount
	return quote
}
