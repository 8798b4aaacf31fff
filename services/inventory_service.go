package services

import (
	"context"
	"errors"
	"time"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/repository"

	"go.uber.org/zap"
)

// InventoryService owns the stock ledger.
type InventoryService interface {
	Create(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error)
	Get(ctx context.Context, code string) (*models.InventoryItem, error)
	List(ctx context.Context, page, limit int) ([]models.InventoryItem, int64, error)
	LowStock(ctx context.Context) ([]models.InventoryItem, error)
	Update(ctx context.Context, code string, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error)
	Delete(ctx context.Context, code string) error
	AddStock(ctx context.Context, code string, amount float64) (*models.InventoryItem, error)
	RemoveStock(ctx context.Context, code string, amount float64) (*models.InventoryItem, error)
}

type inventoryServiceImpl struct {
	repo   repository.InventoryRepository
	logger *zap.Logger
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repository.InventoryRepository, logger *zap.Logger) InventoryService {
	return &inventoryServiceImpl{repo: repo, logger: logger}
}

func (s *inventoryServiceImpl) Create(ctx context.Context, req *models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	item := &models.InventoryItem{
		Code:        req.Code,
		Name:        req.Name,
		Type:        req.Type,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		Threshold:   req.Threshold,
		LastUpdated: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("Inventory item code already exists: " + req.Code)
		}
		return nil, apperrors.Internal("Failed to create inventory item", err)
	}
	return item, nil
}

func (s *inventoryServiceImpl) Get(ctx context.Context, code string) (*models.InventoryItem, error) {
	item, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Inventory item not found: " + code)
		}
		return nil, apperrors.Internal("Failed to fetch inventory item", err)
	}
	return item, nil
}

func (s *inventoryServiceImpl) List(ctx context.Context, page, limit int) ([]models.InventoryItem, int64, error) {
	items, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list inventory", err)
	}
	return items, total, nil
}

// LowStock returns every item at or below its threshold, for dashboard
// alerting. Derived on read.
func (s *inventoryServiceImpl) LowStock(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.repo.FindLow(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list low-stock items", err)
	}
	if items == nil {
		items = make([]models.InventoryItem, 0)
	}
	return items, nil
}

func (s *inventoryServiceImpl) Update(ctx context.Context, code string, req *models.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.Threshold != nil {
		item.Threshold = *req.Threshold
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, apperrors.Internal("Failed to update inventory item", err)
	}
	return item, nil
}

func (s *inventoryServiceImpl) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Inventory item not found: " + code)
		}
		return apperrors.Internal("Failed to delete inventory item", err)
	}
	return nil
}

func (s *inventoryServiceImpl) AddStock(ctx context.Context, code string, amount float64) (*models.InventoryItem, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("Amount must be a positive number")
	}
	if err := s.repo.AddStock(ctx, code, amount); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Inventory item not found: " + code)
		}
		return nil, apperrors.Internal("Failed to add stock", err)
	}

	s.logger.Info("Stock added", zap.String("code", code), zap.Float64("amount", amount))
	return s.Get(ctx, code)
}

func (s *inventoryServiceImpl) RemoveStock(ctx context.Context, code string, amount float64) (*models.InventoryItem, error) {
	if amount <= 0 {
		return nil, apperrors.Validation("Amount must be a positive number")
	}
	if err := s.repo.RemoveStock(ctx, code, amount); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperrors.NotFound("Inventory item not found: " + code)
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, apperrors.InsufficientStock("Removal exceeds available stock for " + code)
		default:
			return nil, apperrors.Internal("Failed to remove stock", err)
		}
	}

	item, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if item.IsLow() {
		s.logger.Warn("Item at or below low-stock threshold",
			zap.String("code", code),
			zap.Float64("quantity", item.Quantity),
			zap.Float64("threshold", item.Threshold),
		)
	}
	return item, nil
}
