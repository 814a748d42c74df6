// Package settings keeps the platform fee configuration in memory and
// refreshes it from the settings store in the background.
package settings

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"boostify/internal/models"
	"boostify/internal/services/pricing"

	"github.com/shopspring/decimal"
)

const refreshInterval = 30 * time.Second

// Store loads setting rows by key.
type Store interface {
	GetByKeys(ctx context.Context, keys ...string) ([]models.Setting, error)
}

// Service exposes the current fee configuration. A refresh failure keeps the
// previously loaded values; an in-flight calculation may use a value that
// goes stale moments later, which is acceptable for fee tuning.
type Service struct {
	store Store

	mu  sync.RWMutex
	fee pricing.FeeConfig
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Current returns the most recently loaded fee configuration.
func (s *Service) Current() pricing.FeeConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fee
}

// Refresh loads the fee settings once. Missing keys and unparsable values
// coerce to 0; a store error retains whatever was loaded before.
func (s *Service) Refresh(ctx context.Context) error {
	rows, err := s.store.GetByKeys(ctx, models.SettingFlatFee, models.SettingPercentageFee)
	if err != nil {
		log.Printf("settings refresh failed, keeping previous values: %v", err)
		return err
	}

	var cfg pricing.FeeConfig
	for _, row := range rows {
		switch row.Key {
		case models.SettingFlatFee:
			cfg.FlatFee = coerceFloat(row.Value)
		case models.SettingPercentageFee:
			cfg.PercentageFee = coerceFloat(row.Value)
		}
	}

	s.mu.Lock()
	s.fee = cfg
	s.mu.Unlock()
	return nil
}

// Start refreshes immediately, then every refreshInterval until ctx is done.
func (s *Service) Start(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		log.Printf("initial settings load failed: %v", err)
	}
	go func() {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = s.Refresh(ctx)
			}
		}
	}()
}

// coerceFloat parses a setting value that may hold a number as a string,
// defaulting to 0 on failure.
func coerceFloat(raw string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
