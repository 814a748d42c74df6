package repositories

import (
	"context"

	"boostify/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository manages key/value platform settings. GetByKeys satisfies
// settings.Store.
type SettingRepository interface {
	GetByKeys(ctx context.Context, keys ...string) ([]models.Setting, error)
	Set(ctx context.Context, key, value string) error
	List(ctx context.Context) ([]models.Setting, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetByKeys(ctx context.Context, keys ...string) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.WithContext(ctx).Where("key IN ?", keys).Find(&settings).Error
	return settings, err
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

func (r *settingRepository) List(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := r.db.WithContext(ctx).Order("key").Find(&settings).Error
	return settings, err
}
