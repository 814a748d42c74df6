package models

import (
	"time"
)

// Well-known setting keys
const (
	SettingFlatFee       = "flat_fee"
	SettingPercentageFee = "percentage_fee"
)

// Setting is a key/value configuration row. Values may hold numbers as
// strings and are coerced at read time, defaulting to 0 on failure.
type Setting struct {
	ID        uint   `gorm:"primarykey"`
	Key       string `gorm:"uniqueIndex;not null"`
	Value     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
