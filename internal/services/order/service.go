// Package order implements order placement against the reseller panel and
// the background status poller.
package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"boostify/internal/metrics"
	"boostify/internal/models"
	"boostify/internal/repositories"
	"boostify/internal/services/pricing"
	"boostify/internal/services/reseller"
	"boostify/internal/services/settings"
	"boostify/internal/services/wallet"

	"github.com/google/uuid"
)

type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, userID uint, reference string) (*models.Order, error)
	ListUserOrders(ctx context.Context, userID uint, offset, limit int) ([]models.Order, int64, error)

	// Quote prices a quantity without placing an order.
	Quote(ctx context.Context, serviceID uint, quantity int, currency string) (pricing.Quote, error)
}

type service struct {
	orders   repositories.OrderRepository
	services repositories.ServiceRepository
	wallets  wallet.Service
	calc     *pricing.Calculator
	fees     *settings.Service
	panel    ResellerAPI
}

func NewService(
	orders repositories.OrderRepository,
	services repositories.ServiceRepository,
	wallets wallet.Service,
	calc *pricing.Calculator,
	fees *settings.Service,
	panel ResellerAPI,
) Service {
	return &service{
		orders:   orders,
		services: services,
		wallets:  wallets,
		calc:     calc,
		fees:     fees,
		panel:    panel,
	}
}

func (s *service) Quote(ctx context.Context, serviceID uint, quantity int, currency string) (pricing.Quote, error) {
	svc, err := s.services.GetByID(serviceID)
	if err != nil {
		return pricing.Quote{}, ErrServiceUnavailable
	}
	quote := s.calc.Calculate(ctx, svc.Tiers, quantity, s.fees.Current(), currency)
	if quote.UsedFallbackRate {
		metrics.FallbackRateTotal.WithLabelValues(quote.Currency).Inc()
	}
	return quote, nil
}

// PlaceOrder quotes the price in the buyer's wallet currency, debits the
// wallet, records the order and submits it upstream. A panel rejection
// refunds the debit; a transient submit failure leaves the order pending
// for the poller to resubmit.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*models.Order, error) {
	svc, err := s.services.GetByID(input.ServiceID)
	if err != nil || !svc.Active {
		return nil, ErrServiceUnavailable
	}

	w, err := s.wallets.GetWallet(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	quote := s.calc.Calculate(ctx, svc.Tiers, input.Quantity, s.fees.Current(), w.Currency)
	if quote.Amount <= 0 {
		return nil, ErrNoPriceForQuantity
	}
	if quote.UsedFallbackRate {
		metrics.FallbackRateTotal.WithLabelValues(quote.Currency).Inc()
	}

	order := &models.Order{
		Reference:        uuid.NewString(),
		UserID:           input.UserID,
		ServiceID:        svc.ID,
		Link:             input.Link,
		Quantity:         input.Quantity,
		Charge:           quote.Amount,
		Currency:         quote.Currency,
		UsedFallbackRate: quote.UsedFallbackRate,
		Status:           models.OrderStatusPending,
	}

	desc := fmt.Sprintf("Order %s: %s x%d", order.Reference, svc.Name, input.Quantity)
	if err := s.wallets.Debit(ctx, input.UserID, quote.Amount, models.TransactionTypeOrderCharge, desc, order.Reference); err != nil {
		return nil, err
	}

	if err := s.orders.Create(order); err != nil {
		if refundErr := s.wallets.Credit(ctx, input.UserID, quote.Amount, models.TransactionTypeRefund, "Refund: "+desc, order.Reference); refundErr != nil {
			log.Printf("failed to refund user %d after order create failure: %v", input.UserID, refundErr)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.OrdersCreatedTotal.WithLabelValues(svc.Category, order.Currency).Inc()
	metrics.OrderChargeTotal.WithLabelValues(order.Currency).Add(order.Charge)

	if err := s.submit(ctx, order, svc); err != nil {
		if errors.Is(err, reseller.ErrOrderRejected) {
			order.Status = models.OrderStatusCanceled
			if updErr := s.orders.Update(order); updErr != nil {
				log.Printf("failed to cancel rejected order %s: %v", order.Reference, updErr)
			}
			if refundErr := s.wallets.Credit(ctx, input.UserID, quote.Amount, models.TransactionTypeRefund, "Refund: "+desc, order.Reference); refundErr != nil {
				log.Printf("failed to refund user %d after rejection: %v", input.UserID, refundErr)
			}
			return nil, err
		}
		// Transient failure: the poller retries submission later.
		log.Printf("order %s submit failed, left pending: %v", order.Reference, err)
	}

	return order, nil
}

func (s *service) submit(ctx context.Context, order *models.Order, svc *models.Service) error {
	resellerID, err := s.panel.AddOrder(ctx, svc.ResellerServiceID, order.Link, order.Quantity)
	if err != nil {
		metrics.ResellerErrorsTotal.WithLabelValues("add").Inc()
		return err
	}
	order.ResellerOrderID = resellerID
	return s.orders.Update(order)
}

func (s *service) GetOrder(ctx context.Context, userID uint, reference string) (*models.Order, error) {
	order, err := s.orders.GetByReference(reference)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

func (s *service) ListUserOrders(ctx context.Context, userID uint, offset, limit int) ([]models.Order, int64, error) {
	return s.orders.ListByUser(userID, offset, limit)
}
