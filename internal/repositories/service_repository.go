package repositories

import (
	"context"
	"errors"
	"log"

	"boostify/internal/models"
	"boostify/internal/repositories/cache"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository manages the service catalog and its price tiers.
type ServiceRepository interface {
	Create(svc *models.Service) error
	GetByID(id uint) (*models.Service, error)
	Update(svc *models.Service) error
	Delete(id uint) error
	ListActive(ctx context.Context) ([]models.Service, error)
	List(offset, limit int) ([]models.Service, int64, error)

	ReplaceTiers(serviceID uint, tiers []models.PriceTier) error
}

type serviceRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewServiceRepository(db *gorm.DB, cache *cache.CacheService) ServiceRepository {
	return &serviceRepository{db: db, cache: cache}
}

func (r *serviceRepository) Create(svc *models.Service) error {
	if err := r.db.Create(svc).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *serviceRepository) GetByID(id uint) (*models.Service, error) {
	var svc models.Service
	if err := r.db.Preload("Tiers", func(db *gorm.DB) *gorm.DB {
		return db.Order("min_quantity")
	}).First(&svc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) Update(svc *models.Service) error {
	if err := r.db.Omit("Tiers").Save(svc).Error; err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *serviceRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Service{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	r.invalidate()
	return nil
}

// ListActive serves the public catalog, cached for a few minutes.
func (r *serviceRepository) ListActive(ctx context.Context) ([]models.Service, error) {
	if cached, found, err := r.cache.GetCatalog(ctx); err == nil && found {
		return cached, nil
	}

	var services []models.Service
	if err := r.db.Preload("Tiers", func(db *gorm.DB) *gorm.DB {
		return db.Order("min_quantity")
	}).Where("active = ?", true).Order("sort_order, id").Find(&services).Error; err != nil {
		return nil, err
	}

	if err := r.cache.CacheCatalog(ctx, services); err != nil {
		log.Printf("failed to cache catalog: %v", err)
	}
	return services, nil
}

func (r *serviceRepository) List(offset, limit int) ([]models.Service, int64, error) {
	var services []models.Service
	var total int64

	if err := r.db.Model(&models.Service{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Preload("Tiers").Order("sort_order, id").
		Offset(offset).Limit(limit).Find(&services).Error; err != nil {
		return nil, 0, err
	}
	return services, total, nil
}

// ReplaceTiers swaps a service's tier table atomically.
func (r *serviceRepository) ReplaceTiers(serviceID uint, tiers []models.PriceTier) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&models.PriceTier{}).Error; err != nil {
			return err
		}
		for i := range tiers {
			tiers[i].ID = 0
			tiers[i].ServiceID = serviceID
		}
		if len(tiers) == 0 {
			return nil
		}
		return tx.Create(&tiers).Error
	})
	if err != nil {
		return err
	}
	r.invalidate()
	return nil
}

func (r *serviceRepository) invalidate() {
	if err := r.cache.InvalidateCatalog(context.Background()); err != nil {
		log.Printf("failed to invalidate catalog cache: %v", err)
	}
}
