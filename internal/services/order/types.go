package order

import (
	"context"

	"boostify/internal/services/reseller"
)

// PlaceOrderInput is a request to purchase a quantity of a catalog service.
type PlaceOrderInput struct {
	UserID    uint
	ServiceID uint
	Link      string
	Quantity  int
}

// ResellerAPI is the slice of the panel client the order flow needs.
type ResellerAPI interface {
	AddOrder(ctx context.Context, serviceID int, link string, quantity int) (int64, error)
	GetOrderStatus(ctx context.Context, orderID int64) (*reseller.OrderStatus, error)
}
