package repositories

import (
	"errors"

	"boostify/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository manages storefront orders.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByReference(reference string) (*models.Order, error)
	Update(order *models.Order) error
	ListByUser(userID uint, offset, limit int) ([]models.Order, int64, error)
	List(offset, limit int) ([]models.Order, int64, error)

	// ListOpen returns submitted orders in a non-terminal status, for the
	// status poller.
	ListOpen(limit int) ([]models.Order, error)

	// ListUnsubmitted returns pending orders that never reached the
	// reseller, for resubmission.
	ListUnsubmitted(limit int) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Service").First(&order, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByReference(reference string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Service").Where("reference = ?", reference).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) ListByUser(userID uint, offset, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	q := r.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Preload("Service").Where("user_id = ?", userID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) List(offset, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := r.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Preload("Service").Order("created_at DESC").
		Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) ListOpen(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("reseller_order_id > 0 AND status IN ?", []string{
		models.OrderStatusPending,
		models.OrderStatusInProgress,
		models.OrderStatusProcessing,
	}).Order("updated_at").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListUnsubmitted(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Service").
		Where("reseller_order_id = 0 AND status = ?", models.OrderStatusPending).
		Order("created_at").Limit(limit).Find(&orders).Error
	return orders, err
}
