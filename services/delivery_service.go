package services

import (
	"context"
	"errors"
	"time"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeliveryService owns fulfillment records and keeps their status in sync
// with the parent orders.
type DeliveryService interface {
	// Reconcile ensures every pending order has exactly one delivery.
	// Idempotent; safe to run concurrently. Returns the number of
	// deliveries created.
	Reconcile(ctx context.Context) (int, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Delivery, error)
	List(ctx context.Context, page, limit int) ([]models.Delivery, int64, error)
	AssignDriver(ctx context.Context, id uuid.UUID, req *models.AssignDriverRequest) (*models.Delivery, error)
	RemoveDriver(ctx context.Context, id uuid.UUID) (*models.Delivery, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type deliveryServiceImpl struct {
	repo      repository.DeliveryRepository
	orderRepo repository.OrderRepository
	logger    *zap.Logger
}

// NewDeliveryService creates a new DeliveryService.
func NewDeliveryService(repo repository.DeliveryRepository, orderRepo repository.OrderRepository, logger *zap.Logger) DeliveryService {
	return &deliveryServiceImpl{repo: repo, orderRepo: orderRepo, logger: logger}
}

func (s *deliveryServiceImpl) Reconcile(ctx context.Context) (int, error) {
	orders, err := s.orderRepo.FindByStatus(ctx, models.OrderStatusPending)
	if err != nil {
		return 0, apperrors.Internal("Failed to list pending orders", err)
	}

	created := 0
	for _, o := range orders {
		delivery := &models.Delivery{
			OrderID:      o.ID,
			CustomerName: o.CustomerName,
			Address:      o.Address,
			Status:       models.DeliveryStatusPending,
		}
		inserted, err := s.repo.CreateIfAbsent(ctx, delivery)
		if err != nil {
			// Keep going; the next pass retries this order.
			s.logger.Warn("Failed to reconcile delivery for order",
				zap.String("order_id", o.ID.String()), zap.Error(err))
			continue
		}
		if inserted {
			created++
		}
	}

	if created > 0 {
		s.logger.Info("Delivery reconciliation created records", zap.Int("created", created))
	}
	return created, nil
}

func (s *deliveryServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Delivery, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Delivery not found")
		}
		return nil, apperrors.Internal("Failed to fetch delivery", err)
	}
	return d, nil
}

func (s *deliveryServiceImpl) List(ctx context.Context, page, limit int) ([]models.Delivery, int64, error) {
	deliveries, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list deliveries", err)
	}
	return deliveries, total, nil
}

func (s *deliveryServiceImpl) AssignDriver(ctx context.Context, id uuid.UUID, req *models.AssignDriverRequest) (*models.Delivery, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.DeliveryStatusInProgress
	}
	if !models.ValidDeliveryStatus(status) {
		return nil, apperrors.Validation("Unknown delivery status: " + status)
	}

	driver := req.DriverID
	d.AssignedTo = &driver
	d.Status = status
	if status == models.DeliveryStatusDelivered {
		now := time.Now().UTC()
		d.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, apperrors.Internal("Failed to update delivery", err)
	}

	if status == models.DeliveryStatusDelivered {
		if err := s.orderRepo.UpdateStatus(ctx, d.OrderID, models.OrderStatusCompleted); err != nil {
			return nil, apperrors.Internal("Failed to complete parent order", err)
		}
	}

	s.logger.Info("Driver assigned",
		zap.String("delivery_id", d.ID.String()),
		zap.String("driver_id", req.DriverID),
		zap.String("status", status),
	)
	return d, nil
}

func (s *deliveryServiceImpl) RemoveDriver(ctx context.Context, id uuid.UUID) (*models.Delivery, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d.AssignedTo = nil
	d.Status = models.DeliveryStatusPending
	d.CompletedAt = nil

	if err := s.repo.Update(ctx, d); err != nil {
		return nil, apperrors.Internal("Failed to update delivery", err)
	}
	return d, nil
}

func (s *deliveryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	d, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete delivery", err)
	}

	// Reset, never cascade: the parent order goes back to pending so the
	// next reconciliation pass recreates a delivery for it.
	if err := s.orderRepo.UpdateStatus(ctx, d.OrderID, models.OrderStatusPending); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return apperrors.Internal("Failed to reset parent order", err)
		}
	}

	s.logger.Info("Delivery deleted, parent order reset",
		zap.String("delivery_id", id.String()),
		zap.String("order_id", d.OrderID.String()),
	)
	return nil
}
