package repositories

import (
	"context"
	"errors"

	"boostify/internal/models"

	"gorm.io/gorm"
)

var ErrRateNotFound = errors.New("exchange rate not found")

// RateRepository manages stored exchange rates. GetActiveRate satisfies
// currency.RateStore.
type RateRepository interface {
	GetActiveRate(ctx context.Context, from, to string) (*models.ExchangeRate, error)
	Upsert(ctx context.Context, rate *models.ExchangeRate) error
	List(ctx context.Context) ([]models.ExchangeRate, error)
}

type rateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) GetActiveRate(ctx context.Context, from, to string) (*models.ExchangeRate, error) {
	var rate models.ExchangeRate
	err := r.db.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ? AND is_active = ?", from, to, true).
		First(&rate).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRateNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// Upsert deactivates any previous rate for the pair and stores the new one,
// keeping at most one active row per pair.
func (r *rateRepository) Upsert(ctx context.Context, rate *models.ExchangeRate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ExchangeRate{}).
			Where("from_currency = ? AND to_currency = ?", rate.FromCurrency, rate.ToCurrency).
			Update("is_active", false).Error; err != nil {
			return err
		}
		rate.IsActive = true
		return tx.Create(rate).Error
	})
}

func (r *rateRepository) List(ctx context.Context) ([]models.ExchangeRate, error) {
	var rates []models.ExchangeRate
	err := r.db.WithContext(ctx).
		Order("from_currency, to_currency, is_active DESC, created_at DESC").
		Find(&rates).Error
	return rates, err
}
