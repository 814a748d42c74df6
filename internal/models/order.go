package models

import (
	"gorm.io/gorm"
)

// Order statuses. Reseller numeric codes are mapped onto these by the status
// poller; pending/in_progress/processing/partial are non-terminal.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusPartial    = "partial"
	OrderStatusCanceled   = "canceled"
	OrderStatusProcessing = "processing"
)

type Order struct {
	gorm.Model
	Reference        string  `gorm:"uniqueIndex;not null"` // public uuid reference
	UserID           uint    `gorm:"index;not null"`
	ServiceID        uint    `gorm:"index;not null"`
	Service          Service `gorm:"foreignKey:ServiceID"`
	Link             string  `gorm:"not null"`
	Quantity         int     `gorm:"not null"`
	Charge           float64 `gorm:"not null"` // amount debited, in Currency
	Currency         string  `gorm:"default:'USD'"`
	UsedFallbackRate bool    `gorm:"default:false"`
	ResellerOrderID  int64   `gorm:"index;default:0"` // 0 until submitted upstream
	Status           string  `gorm:"index;not null;default:'pending'"`
	StartCount       int     `gorm:"default:0"`
	Remains          int     `gorm:"default:0"`
}
