package repository

import (
	"context"
	"errors"
	"time"

	"stitchworks-api/models"

	"gorm.io/gorm"
)

// SalaryRepository defines data access for salary records.
type SalaryRepository interface {
	Create(ctx context.Context, record *models.SalaryRecord) error
	FindByCode(ctx context.Context, code string) (*models.SalaryRecord, error)
	FindAll(ctx context.Context, page, limit int) ([]models.SalaryRecord, int64, error)
	SetPaid(ctx context.Context, code string, paid bool) error
	Delete(ctx context.Context, code string) error
	SumAmountBetween(ctx context.Context, from, to time.Time) (float64, error)
}

// GormSalaryRepository implements SalaryRepository using GORM.
type GormSalaryRepository struct {
	db *gorm.DB
}

// NewGormSalaryRepository creates a new GormSalaryRepository.
func NewGormSalaryRepository(db *gorm.DB) SalaryRepository {
	return &GormSalaryRepository{db: db}
}

func (r *GormSalaryRepository) Create(ctx context.Context, record *models.SalaryRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *GormSalaryRepository) FindByCode(ctx context.Context, code string) (*models.SalaryRecord, error) {
	var rec models.SalaryRecord
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *GormSalaryRepository) FindAll(ctx context.Context, page, limit int) ([]models.SalaryRecord, int64, error) {
	var records []models.SalaryRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SalaryRecord{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).Limit(limit).
		Order("payment_date DESC").
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *GormSalaryRepository) SetPaid(ctx context.Context, code string, paid bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.SalaryRecord{}).
		Where("code = ?", code).
		Update("paid", paid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormSalaryRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).Delete(&models.SalaryRecord{}, "code = ?", code)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumAmountBetween returns the sum of salary amounts with a payment date in [from, to).
func (r *GormSalaryRepository) SumAmountBetween(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&models.SalaryRecord{}).
		Where("payment_date >= ? AND payment_date < ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
