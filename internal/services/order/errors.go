package order

import "errors"

var (
	ErrServiceUnavailable = errors.New("service is not available")
	ErrNoPriceForQuantity = errors.New("no price defined for this quantity")
	ErrOrderNotFound      = errors.New("order not found")
	ErrNotOrderOwner      = errors.New("order belongs to another user")
)
