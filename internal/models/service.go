package models

import (
	"time"

	"gorm.io/gorm"
)

// Service categories
const (
	CategoryFollowers = "followers"
	CategoryLikes     = "likes"
	CategoryViews     = "views"
	CategoryComments  = "comments"
)

// Service is a catalog entry resold from the upstream panel.
// Prices are defined by the attached tiers, in USD.
type Service struct {
	gorm.Model
	Name              string `gorm:"not null"`
	Category          string `gorm:"index;not null"`
	Description       string
	ResellerServiceID int         `gorm:"not null"` // service id on the reseller panel
	MinQuantity       int         `gorm:"default:0"`
	MaxQuantity       int         `gorm:"default:0"`
	Active            bool        `gorm:"default:true;index"`
	SortOrder         int         `gorm:"default:0"`
	Tiers             []PriceTier `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

// PriceTier prices quantities in [MinQuantity, MaxQuantity] at UnitPrice per
// UnitBasis units. UnitPrice arrives from upstream as a decimal-bearing string
// and is parsed at the pricing boundary, not here. Tiers are expected to be
// non-overlapping and to cover the service's quantity range; neither is
// enforced by the schema.
type PriceTier struct {
	ID          uint   `gorm:"primarykey"`
	ServiceID   uint   `gorm:"index;not null"`
	MinQuantity int    `gorm:"not null"`
	MaxQuantity int    `gorm:"not null"`
	UnitBasis   int    `gorm:"not null;default:1000"`
	UnitPrice   string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
