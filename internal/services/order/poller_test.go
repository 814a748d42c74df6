package order

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"boostify/internal/models"
	"boostify/internal/services/reseller"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestResellerStatusNames(t *testing.T) {
	want := map[int]string{
		0: models.OrderStatusPending,
		1: models.OrderStatusInProgress,
		2: models.OrderStatusCompleted,
		3: models.OrderStatusPartial,
		4: models.OrderStatusCanceled,
		5: models.OrderStatusProcessing,
	}
	assert.Equal(t, want, resellerStatusNames)
}

func TestApplyStatus(t *testing.T) {
	t.Run("maps the code and stores progress counters", func(t *testing.T) {
		orders := new(mockOrderRepo)
		p := NewPoller(orders, new(mockWalletService), new(mockPanel), 0)

		o := &models.Order{Reference: "ref-1", Status: models.OrderStatusPending}
		orders.On("Update", o).Return(nil)

		p.applyStatus(o, 2, 120, 0)

		assert.Equal(t, models.OrderStatusCompleted, o.Status)
		assert.Equal(t, 120, o.StartCount)
		assert.Equal(t, 0, o.Remains)
		orders.AssertExpectations(t)
	})

	t.Run("unknown codes leave the order untouched", func(t *testing.T) {
		orders := new(mockOrderRepo)
		p := NewPoller(orders, new(mockWalletService), new(mockPanel), 0)

		o := &models.Order{Reference: "ref-1", Status: models.OrderStatusInProgress, StartCount: 10}
		p.applyStatus(o, 99, 500, 250)

		assert.Equal(t, models.OrderStatusInProgress, o.Status)
		assert.Equal(t, 10, o.StartCount)
		orders.AssertNotCalled(t, "Update", mock.Anything)
	})

	t.Run("unchanged status skips the write", func(t *testing.T) {
		orders := new(mockOrderRepo)
		p := NewPoller(orders, new(mockWalletService), new(mockPanel), 0)

		o := &models.Order{Reference: "ref-1", Status: models.OrderStatusInProgress, StartCount: 120, Remains: 40}
		p.applyStatus(o, 1, 120, 40)

		orders.AssertNotCalled(t, "Update", mock.Anything)
	})
}

func TestRefreshStatuses(t *testing.T) {
	ctx := context.Background()

	t.Run("updates every open order", func(t *testing.T) {
		orders := new(mockOrderRepo)
		panel := new(mockPanel)
		p := NewPoller(orders, new(mockWalletService), panel, 0)

		open := []models.Order{
			{Reference: "ref-1", ResellerOrderID: 9001, Status: models.OrderStatusPending},
			{Reference: "ref-2", ResellerOrderID: 9002, Status: models.OrderStatusInProgress},
		}
		orders.On("ListOpen", pollBatchSize).Return(open, nil)
		panel.On("GetOrderStatus", ctx, int64(9001)).Return(&reseller.OrderStatus{Status: 1, StartCount: 5}, nil)
		panel.On("GetOrderStatus", ctx, int64(9002)).Return(&reseller.OrderStatus{Status: 2, StartCount: 50}, nil)
		orders.On("Update", mock.AnythingOfType("*models.Order")).Return(nil).Twice()

		p.refreshStatuses(ctx)

		orders.AssertExpectations(t)
		panel.AssertExpectations(t)
	})

	t.Run("a failing status lookup does not stop the batch", func(t *testing.T) {
		orders := new(mockOrderRepo)
		panel := new(mockPanel)
		p := NewPoller(orders, new(mockWalletService), panel, 0)

		open := []models.Order{
			{Reference: "ref-1", ResellerOrderID: 9001, Status: models.OrderStatusPending},
			{Reference: "ref-2", ResellerOrderID: 9002, Status: models.OrderStatusPending},
		}
		orders.On("ListOpen", pollBatchSize).Return(open, nil)
		panel.On("GetOrderStatus", ctx, int64(9001)).Return(nil, errors.New("timeout"))
		panel.On("GetOrderStatus", ctx, int64(9002)).Return(&reseller.OrderStatus{Status: 2}, nil)
		orders.On("Update", mock.AnythingOfType("*models.Order")).Return(nil).Once()

		p.refreshStatuses(ctx)

		panel.AssertExpectations(t)
		orders.AssertExpectations(t)
	})
}

func TestResubmitPending(t *testing.T) {
	ctx := context.Background()

	t.Run("retries orders that never reached the panel", func(t *testing.T) {
		orders := new(mockOrderRepo)
		panel := new(mockPanel)
		p := NewPoller(orders, new(mockWalletService), panel, 0)

		stuck := []models.Order{{
			Reference: "ref-1",
			Link:      "https://example.com/p/1",
			Quantity:  500,
			Status:    models.OrderStatusPending,
			Service:   models.Service{ResellerServiceID: 42},
		}}
		orders.On("ListUnsubmitted", pollBatchSize).Return(stuck, nil)
		panel.On("AddOrder", ctx, 42, "https://example.com/p/1", 500).Return(int64(9001), nil)
		orders.On("Update", mock.MatchedBy(func(o *models.Order) bool {
			return o.ResellerOrderID == 9001
		})).Return(nil)

		p.resubmitPending(ctx)

		orders.AssertExpectations(t)
		panel.AssertExpectations(t)
	})

	t.Run("a transient failure leaves the order for the next tick", func(t *testing.T) {
		orders := new(mockOrderRepo)
		panel := new(mockPanel)
		wallets := new(mockWalletService)
		p := NewPoller(orders, wallets, panel, 0)

		stuck := []models.Order{{Reference: "ref-1", Service: models.Service{ResellerServiceID: 42}}}
		orders.On("ListUnsubmitted", pollBatchSize).Return(stuck, nil)
		panel.On("AddOrder", ctx, 42, mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout"))

		p.resubmitPending(ctx)

		orders.AssertNotCalled(t, "Update", mock.Anything)
		wallets.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a panel rejection cancels the order and refunds the charge", func(t *testing.T) {
		orders := new(mockOrderRepo)
		panel := new(mockPanel)
		wallets := new(mockWalletService)
		p := NewPoller(orders, wallets, panel, 0)

		stuck := []models.Order{{
			Reference: "ref-1",
			UserID:    7,
			Charge:    1.10,
			Currency:  models.CurrencyUSD,
			Status:    models.OrderStatusPending,
			Service:   models.Service{ResellerServiceID: 42},
		}}
		orders.On("ListUnsubmitted", pollBatchSize).Return(stuck, nil)
		panel.On("AddOrder", ctx, 42, mock.Anything, mock.Anything).
			Return(int64(0), fmt.Errorf("%w: invalid link", reseller.ErrOrderRejected))
		orders.On("Update", mock.MatchedBy(func(o *models.Order) bool {
			return o.Reference == "ref-1" && o.Status == models.OrderStatusCanceled
		})).Return(nil)
		wallets.On("Credit", ctx, uint(7), 1.10, models.TransactionTypeRefund, mock.Anything, "ref-1").Return(nil)

		p.resubmitPending(ctx)

		orders.AssertExpectations(t)
		wallets.AssertExpectations(t)
	})

	t.Run("a failed cancel write skips the refund until the next tick", func(t *testing.T) {
		orders := new(mockOrderRepo)
		panel := new(mockPanel)
		wallets := new(mockWalletService)
		p := NewPoller(orders, wallets, panel, 0)

		stuck := []models.Order{{Reference: "ref-1", UserID: 7, Charge: 1.10, Service: models.Service{ResellerServiceID: 42}}}
		orders.On("ListUnsubmitted", pollBatchSize).Return(stuck, nil)
		panel.On("AddOrder", ctx, 42, mock.Anything, mock.Anything).Return(int64(0), reseller.ErrOrderRejected)
		orders.On("Update", mock.Anything).Return(errors.New("db down"))

		p.resubmitPending(ctx)

		wallets.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
