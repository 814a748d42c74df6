// Package payment handles wallet top-ups through Stripe.
package payment

import (
	"context"
	"errors"
	"fmt"
	"os"

	"boostify/internal/metrics"
	"boostify/internal/models"
	"boostify/internal/services/wallet"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

var (
	ErrInvalidAmount = errors.New("top-up amount must be positive")
	ErrChargeFailed  = errors.New("card charge failed")
)

const minTopUp = 1.0 // USD

// RateConverter converts the charged USD amount into the wallet's currency.
type RateConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (converted float64, usedFallback bool)
}

type Service interface {
	TopUp(ctx context.Context, userID uint, amount float64, cardToken string) (string, error)
}

// cardCharger performs the card charge. Split out so the top-up flow is
// testable without hitting Stripe.
type cardCharger interface {
	charge(userID uint, amount float64, cardToken string) (string, error)
}

type service struct {
	wallets wallet.Service
	rates   RateConverter
	cards   cardCharger
}

func NewService(wallets wallet.Service, rates RateConverter) Service {
	return &service{
		wallets: wallets,
		rates:   rates,
		cards:   stripeCharger{},
	}
}

// TopUp charges the tokenized card in USD and credits the user's wallet in
// the wallet's own currency, converting the charged amount first. The credit
// only happens after the charge succeeds; a credit failure after a successful
// charge is logged for manual reconciliation via the charge id.
func (s *service) TopUp(ctx context.Context, userID uint, amount float64, cardToken string) (string, error) {
	if amount < minTopUp {
		metrics.TopupsTotal.WithLabelValues("invalid_amount").Inc()
		return "", ErrInvalidAmount
	}

	w, err := s.wallets.GetWallet(ctx, userID)
	if err != nil {
		metrics.TopupsTotal.WithLabelValues("no_wallet").Inc()
		return "", err
	}

	chargeID, err := s.cards.charge(userID, amount, cardToken)
	if err != nil {
		metrics.TopupsTotal.WithLabelValues("charge_failed").Inc()
		return "", err
	}

	// The card is always charged in USD; an AZN wallet must receive the
	// converted amount, not the USD numeral.
	credited := amount
	if w.Currency != models.CurrencyUSD {
		credited, _ = s.rates.Convert(ctx, amount, models.CurrencyUSD, w.Currency)
	}

	desc := fmt.Sprintf("Top-up via card (charge %s)", chargeID)
	if err := s.wallets.Credit(ctx, userID, credited, models.TransactionTypeTopup, desc, chargeID); err != nil {
		metrics.TopupsTotal.WithLabelValues("credit_failed").Inc()
		return chargeID, fmt.Errorf("charge %s succeeded but wallet credit failed: %w", chargeID, err)
	}

	metrics.TopupsTotal.WithLabelValues("ok").Inc()
	return chargeID, nil
}

type stripeCharger struct{}

func (stripeCharger) charge(userID uint, amount float64, cardToken string) (string, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(int64(amount * 100)), // cents
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(fmt.Sprintf("Boostify balance top-up, user %d", userID)),
	}
	if err := params.SetSource(cardToken); err != nil {
		return "", fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrChargeFailed, err)
	}
	return ch.ID, nil
}
