package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeTopup       = "TOPUP"
	TransactionTypeOrderCharge = "ORDER_CHARGE"
	TransactionTypeRefund      = "REFUND"
)

// Transaction is a ledger entry against a user's wallet.
type Transaction struct {
	ID            uint    `gorm:"primarykey"`
	Type          string  `gorm:"not null"`
	UserID        uint    `gorm:"index;not null"`
	Amount        float64 `gorm:"not null"`
	Currency      string  `gorm:"default:'USD'"`
	Status        string  `gorm:"not null;default:'pending'"`
	Description   string
	Reference     string // links to an order reference or provider charge id
	PaymentMethod string
	Metadata      JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
