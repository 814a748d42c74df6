package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"boostify/internal/metrics"
	"boostify/internal/models"
	"boostify/internal/repositories"
	"boostify/internal/services/reseller"
	"boostify/internal/services/wallet"
)

const pollBatchSize = 100

// resellerStatusNames maps the panel's numeric status codes to local order
// statuses. Unknown codes leave the order untouched; a status hiccup must
// never corrupt an order row.
var resellerStatusNames = map[int]string{
	0: models.OrderStatusPending,
	1: models.OrderStatusInProgress,
	2: models.OrderStatusCompleted,
	3: models.OrderStatusPartial,
	4: models.OrderStatusCanceled,
	5: models.OrderStatusProcessing,
}

// Poller periodically resubmits stuck orders and refreshes the status of
// open ones from the reseller panel.
type Poller struct {
	orders   repositories.OrderRepository
	wallets  wallet.Service
	panel    ResellerAPI
	interval time.Duration
}

func NewPoller(orders repositories.OrderRepository, wallets wallet.Service, panel ResellerAPI, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Poller{orders: orders, wallets: wallets, panel: panel, interval: interval}
}

// Run blocks until ctx is done.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.resubmitPending(ctx)
			p.refreshStatuses(ctx)
		}
	}
}

func (p *Poller) resubmitPending(ctx context.Context) {
	orders, err := p.orders.ListUnsubmitted(pollBatchSize)
	if err != nil {
		log.Printf("poller: list unsubmitted failed: %v", err)
		return
	}
	for i := range orders {
		o := &orders[i]
		resellerID, err := p.panel.AddOrder(ctx, o.Service.ResellerServiceID, o.Link, o.Quantity)
		if err != nil {
			// A rejection is final: retrying it forever would keep the
			// user's money without ever delivering.
			if errors.Is(err, reseller.ErrOrderRejected) {
				p.cancelAndRefund(ctx, o, err)
				continue
			}
			metrics.ResellerErrorsTotal.WithLabelValues("add").Inc()
			log.Printf("poller: resubmit of order %s failed: %v", o.Reference, err)
			continue
		}
		o.ResellerOrderID = resellerID
		if err := p.orders.Update(o); err != nil {
			log.Printf("poller: failed to store reseller id for order %s: %v", o.Reference, err)
		}
	}
}

func (p *Poller) cancelAndRefund(ctx context.Context, o *models.Order, cause error) {
	log.Printf("poller: order %s rejected by reseller, refunding: %v", o.Reference, cause)

	o.Status = models.OrderStatusCanceled
	if err := p.orders.Update(o); err != nil {
		log.Printf("poller: failed to cancel rejected order %s: %v", o.Reference, err)
		return
	}
	metrics.OrdersStatusTotal.WithLabelValues(models.OrderStatusCanceled).Inc()

	desc := fmt.Sprintf("Refund: order %s rejected by reseller", o.Reference)
	if err := p.wallets.Credit(ctx, o.UserID, o.Charge, models.TransactionTypeRefund, desc, o.Reference); err != nil {
		log.Printf("poller: failed to refund user %d for order %s: %v", o.UserID, o.Reference, err)
	}
}

func (p *Poller) refreshStatuses(ctx context.Context) {
	orders, err := p.orders.ListOpen(pollBatchSize)
	if err != nil {
		log.Printf("poller: list open failed: %v", err)
		return
	}
	for i := range orders {
		o := &orders[i]
		status, err := p.panel.GetOrderStatus(ctx, o.ResellerOrderID)
		if err != nil {
			metrics.ResellerErrorsTotal.WithLabelValues("status").Inc()
			log.Printf("poller: status of order %s failed: %v", o.Reference, err)
			continue
		}
		p.applyStatus(o, status.Status, status.StartCount, status.Remains)
	}
}

func (p *Poller) applyStatus(o *models.Order, code, startCount, remains int) {
	name, known := resellerStatusNames[code]
	if !known {
		log.Printf("poller: order %s has unknown reseller status code %d", o.Reference, code)
		return
	}
	if o.Status == name && o.StartCount == startCount && o.Remains == remains {
		return
	}
	o.Status = name
	o.StartCount = startCount
	o.Remains = remains
	if err := p.orders.Update(o); err != nil {
		log.Printf("poller: failed to update order %s: %v", o.Reference, err)
		return
	}
	metrics.OrdersStatusTotal.WithLabelValues(name).Inc()
}
