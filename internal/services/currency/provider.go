// Package currency resolves conversion rates from the exchange-rate store
// with a short-lived in-process cache, and renders amounts for display.
package currency

import (
	"context"
	"log"
	"sync"
	"time"

	"boostify/internal/models"
)

const (
	cacheTTL = 5 * time.Minute

	// Hard-coded USD->AZN default used when no stored rate is reachable.
	fallbackCrossRate = 1.7
)

// RateStore loads active conversion rates from external storage. Absence of
// a row and query failure are both non-fatal to callers of Provider.
type RateStore interface {
	GetActiveRate(ctx context.Context, from, to string) (*models.ExchangeRate, error)
}

// Provider caches one rate per currency pair. A single lastFetch timestamp
// gates the freshness of every pair: refreshing one pair resets the clock
// for all of them. That imprecision is long-standing storefront behavior;
// with a 5-minute TTL it has never mattered enough to change, and changing
// it would alter which rate an in-flight quote sees.
type Provider struct {
	store RateStore

	mu        sync.Mutex
	rates     map[string]float64
	lastFetch time.Time

	now func() time.Time
}

func NewProvider(store RateStore) *Provider {
	return &Provider{
		store: store,
		rates: make(map[string]float64),
		now:   time.Now,
	}
}

// GetRate resolves the conversion rate for a currency pair. Identical
// currencies return 1 without touching the cache or the store. A fetch
// failure or missing row yields the hard-coded fallback, which is returned
// but never cached; the second return value reports that case.
func (p *Provider) GetRate(ctx context.Context, from, to string) (rate float64, usedFallback bool) {
	if from == to {
		return 1, false
	}

	key := from + "_" + to

	p.mu.Lock()
	if cached, ok := p.rates[key]; ok && p.now().Sub(p.lastFetch) < cacheTTL {
		p.mu.Unlock()
		return cached, false
	}
	p.mu.Unlock()

	row, err := p.store.GetActiveRate(ctx, from, to)
	if err != nil || row == nil || row.Rate <= 0 {
		if err != nil {
			log.Printf("exchange rate %s->%s lookup failed, using fallback: %v", from, to, err)
		}
		return fallbackRate(from, to), true
	}

	p.mu.Lock()
	p.rates[key] = row.Rate
	p.lastFetch = p.now()
	p.mu.Unlock()

	return row.Rate, false
}

// Convert multiplies amount by the pair's rate, short-circuiting to the
// amount unmodified for identical currencies.
func (p *Provider) Convert(ctx context.Context, amount float64, from, to string) (float64, bool) {
	if from == to {
		return amount, false
	}
	rate, usedFallback := p.GetRate(ctx, from, to)
	return amount * rate, usedFallback
}

// ClearCache empties the cache and resets the shared freshness timestamp.
func (p *Provider) ClearCache() {
	p.mu.Lock()
	p.rates = make(map[string]float64)
	p.lastFetch = time.Time{}
	p.mu.Unlock()
}

func fallbackRate(from, to string) float64 {
	if from == to {
		return 1
	}
	return fallbackCrossRate
}
