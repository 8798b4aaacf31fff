package repository

import (
	"context"
	"errors"
	"time"

	"stitchworks-api/models"

	"gorm.io/gorm"
)

// InventoryRepository defines data access for inventory items.
type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	FindByCode(ctx context.Context, code string) (*models.InventoryItem, error)
	FindAll(ctx context.Context, page, limit int) ([]models.InventoryItem, int64, error)
	// FindLow returns every item at or below its low-stock threshold.
	FindLow(ctx context.Context) ([]models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, code string) error
	// AddStock atomically increments the quantity of an item.
	AddStock(ctx context.Context, code string, amount float64) error
	// RemoveStock atomically decrements the quantity, guarded by
	// quantity >= amount in the same statement. Returns
	// ErrInsufficientStock when the guard fails; the row is untouched.
	RemoveStock(ctx context.Context, code string, amount float64) error
	// TotalValuation returns the sum of quantity * unit price over all items.
	TotalValuation(ctx context.Context) (float64, error)
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository.
func NewGormInventoryRepository(db *gorm.DB) InventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *GormInventoryRepository) FindByCode(ctx context.Context, code string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormInventoryRepository) FindAll(ctx context.Context, page, limit int) ([]models.InventoryItem, int64, error) {
	var items []models.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&models.InventoryItem{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).Limit(limit).
		Order("code ASC").
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *GormInventoryRepository) FindLow(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("quantity <= threshold").
		Order("code ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormInventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormInventoryRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Delete(&models.InventoryItem{}, "code = ?", code)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormInventoryRepository) AddStock(ctx context.Context, code string, amount float64) error {
	res := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("code = ?", code).
		UpdateColumns(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", amount),
			"last_updated": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormInventoryRepository) RemoveStock(ctx context.Context, code string, amount float64) error {
	res := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Where("code = ? AND quantity >= ?", code, amount).
		UpdateColumns(map[string]interface{}{
			"quantity":     gorm.Expr("quantity - ?", amount),
			"last_updated": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Zero rows means either the item is missing or the guard failed;
		// distinguish so callers get the right error kind.
		if _, err := r.FindByCode(ctx, code); err != nil {
			return err
		}
		return ErrInsufficientStock
	}
	return nil
}

func (r *GormInventoryRepository) TotalValuation(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&models.InventoryItem{}).
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		Scan(&sum).Error
	return sum, err
}
