package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email               string  `gorm:"uniqueIndex;not null"`
	Password            string  `gorm:"not null" json:"-"`
	Name                string  `gorm:"not null"`
	Role                string  `gorm:"default:'user'"`
	Status              string  `gorm:"default:'active'"`
	Currency            string  `gorm:"default:'USD'"` // preferred display currency
	WalletID            *uint   `gorm:"unique;default:null"`
	Wallet              *Wallet `gorm:"foreignKey:WalletID"`
	LastLoginAt         time.Time
	LastLoginIP         string
	FailedLoginAttempts int `gorm:"default:0"`
	TokenVersion        int `gorm:"default:1"`
}
