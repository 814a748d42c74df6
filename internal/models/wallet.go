package models

import (
	"time"

	"gorm.io/gorm"
)

// Wallet holds a user's prepaid balance. The currency is fixed at
// registration (USD or AZN) and every order for the user is quoted and
// charged in it.
type Wallet struct {
	ID        uint    `gorm:"primarykey"`
	UserID    uint    `gorm:"uniqueIndex;not null"`
	Balance   float64 `gorm:"default:0"`
	Currency  string  `gorm:"default:'USD'"`
	Status    string  `gorm:"default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BeforeCreate zeroes the balance; wallets are only ever funded through
// recorded top-up transactions.
func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	w.Balance = 0.0
	return nil
}
