package models

import (
	"time"

	"gorm.io/gorm"
)

// Supported currency codes
const (
	CurrencyUSD = "USD"
	CurrencyAZN = "AZN"
)

// ExchangeRate is a stored conversion rate. At most one active row per
// (FromCurrency, ToCurrency) pair is expected; the provider treats absence
// or query failure as non-fatal and falls back to a default rate.
type ExchangeRate struct {
	gorm.Model
	FromCurrency string  `gorm:"size:3;index:idx_rate_pair;not null"`
	ToCurrency   string  `gorm:"size:3;index:idx_rate_pair;not null"`
	Rate         float64 `gorm:"not null"`
	IsActive     bool    `gorm:"default:true;index"`
	CapturedAt   time.Time
}
