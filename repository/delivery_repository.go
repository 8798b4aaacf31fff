package repository

import (
	"context"
	"errors"

	"stitchworks-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeliveryRepository defines data access for deliveries.
type DeliveryRepository interface {
	// CreateIfAbsent inserts the delivery unless one already exists for its
	// order. Returns true when a row was inserted. Safe under concurrent
	// invocation: the insert is keyed on the unique order_id index and a
	// conflicting insert is silently skipped.
	CreateIfAbsent(ctx context.Context, delivery *models.Delivery) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Delivery, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Delivery, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Delivery, int64, error)
	Update(ctx context.Context, delivery *models.Delivery) error
	// Delete removes the row physically, freeing the order's delivery
	// slot for the next reconciliation pass.
	Delete(ctx context.Context, id uuid.UUID) error
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GormDeliveryRepository.
func NewGormDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

func (r *GormDeliveryRepository) CreateIfAbsent(ctx context.Context, delivery *models.Delivery) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(delivery)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormDeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Delivery, error) {
	var d models.Delivery
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *GormDeliveryRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Delivery, error) {
	var d models.Delivery
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *GormDeliveryRepository) FindAll(ctx context.Context, page, limit int) ([]models.Delivery, int64, error) {
	var deliveries []models.Delivery
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Delivery{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}

	return deliveries, total, nil
}

func (r *GormDeliveryRepository) Update(ctx context.Context, delivery *models.Delivery) error {
	return r.db.WithContext(ctx).Save(delivery).Error
}

func (r *GormDeliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Delivery{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
