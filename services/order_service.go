package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/notifier"
	"stitchworks-api/repository"
	"stitchworks-api/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconciler is the slice of the delivery coordinator the order lifecycle
// needs: a pass that gives every pending order a delivery record.
type Reconciler interface {
	Reconcile(ctx context.Context) (int, error)
}

// CreateOrderResult is the outcome of placing an order. NotifyErr carries a
// non-fatal confirmation-mail failure; the order itself is already persisted.
type CreateOrderResult struct {
	Order     *models.Order
	NotifyErr error
}

// OrderService owns the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*CreateOrderResult, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, page, limit int) ([]models.Order, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

type orderServiceImpl struct {
	repo       repository.OrderRepository
	reconciler Reconciler
	artwork    storage.ArtworkStore
	mailer     notifier.EmailSender
	logger     *zap.Logger
}

// NewOrderService creates a new OrderService. artwork and mailer may be nil
// when the corresponding collaborator is not configured.
func NewOrderService(
	repo repository.OrderRepository,
	reconciler Reconciler,
	artwork storage.ArtworkStore,
	mailer notifier.EmailSender,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		repo:       repo,
		reconciler: reconciler,
		artwork:    artwork,
		mailer:     mailer,
		logger:     logger,
	}
}

func validateCreateOrder(req *models.CreateOrderRequest) error {
	var missing []string
	if req.CustomerName == "" {
		missing = append(missing, "customer_name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Mobile == "" {
		missing = append(missing, "mobile")
	}
	if req.Address == "" {
		missing = append(missing, "address")
	}
	if req.Material == "" {
		missing = append(missing, "material")
	}
	if len(missing) > 0 {
		return apperrors.Validation("Missing required fields: " + strings.Join(missing, ", "))
	}
	if req.Quantity < 1 {
		return apperrors.Validation("Quantity must be a positive integer")
	}
	return nil
}

func (s *orderServiceImpl) Create(ctx context.Context, req *models.CreateOrderRequest) (*CreateOrderResult, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Mobile:       req.Mobile,
		Address:      req.Address,
		Material:     req.Material,
		Quantity:     req.Quantity,
		Artwork:      req.Artwork,
		ArtworkText:  req.ArtworkText,
		ArtworkImage: req.ArtworkImage,
		Price:        ComputePrice(req.Quantity, req.Artwork, req.Price),
		Status:       models.OrderStatusPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, apperrors.Internal("Failed to save order", err)
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.Int("quantity", order.Quantity),
		zap.Float64("total", order.Price.Total),
	)

	// The new pending order gets its delivery here; a failure is recoverable
	// because the startup pass and every later creation retry it.
	if _, err := s.reconciler.Reconcile(ctx); err != nil {
		s.logger.Warn("Delivery reconciliation after order creation failed", zap.Error(err))
	}

	result := &CreateOrderResult{Order: order}
	if s.mailer != nil {
		if err := s.sendConfirmation(ctx, order); err != nil {
			s.logger.Warn("Order confirmation email failed",
				zap.String("order_id", order.ID.String()), zap.Error(err))
			result.NotifyErr = apperrors.External("Confirmation email could not be sent", err)
		}
	}

	return result, nil
}

func (s *orderServiceImpl) sendConfirmation(ctx context.Context, order *models.Order) error {
	subject := fmt.Sprintf("Order %s received", order.ID)
	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Your order for %d × %s has been received.</p>"+
			"<p>Total: %.2f &mdash; Advance due: %.2f, Balance: %.2f</p>",
		order.CustomerName, order.Quantity, order.Material,
		order.Price.Total, order.Price.Advance, order.Price.Balance,
	)
	_, err := s.mailer.SendEmail(ctx, order.Email, subject, body)
	return err
}

func (s *orderServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Order not found")
		}
		return nil, apperrors.Internal("Failed to fetch order", err)
	}
	return order, nil
}

func (s *orderServiceImpl) List(ctx context.Context, page, limit int) ([]models.Order, int64, error) {
	orders, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list orders", err)
	}
	return orders, total, nil
}

func (s *orderServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previousImage := order.ArtworkImage

	if req.CustomerName != nil {
		order.CustomerName = *req.CustomerName
	}
	if req.Email != nil {
		order.Email = *req.Email
	}
	if req.Mobile != nil {
		order.Mobile = *req.Mobile
	}
	if req.Address != nil {
		order.Address = *req.Address
	}
	if req.Material != nil {
		order.Material = *req.Material
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, apperrors.Validation("Quantity must be a positive integer")
		}
		order.Quantity = *req.Quantity
	}
	if req.Artwork != nil {
		order.Artwork = *req.Artwork
	}
	if req.ArtworkText != nil {
		order.ArtworkText = *req.ArtworkText
	}
	if req.ArtworkImage != nil {
		order.ArtworkImage = *req.ArtworkImage
	}

	order.Price = ComputePrice(order.Quantity, order.Artwork, req.Price)

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, apperrors.Internal("Failed to update order", err)
	}

	if previousImage != "" && previousImage != order.ArtworkImage {
		s.deleteArtwork(ctx, previousImage)
	}

	return order, nil
}

func (s *orderServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete order", err)
	}

	if order.ArtworkImage != "" {
		s.deleteArtwork(ctx, order.ArtworkImage)
	}
	return nil
}

// deleteArtwork removes a blob best-effort; failures are logged and swallowed.
func (s *orderServiceImpl) deleteArtwork(ctx context.Context, ref string) {
	if s.artwork == nil {
		return
	}
	if err := s.artwork.Delete(ctx, ref); err != nil {
		s.logger.Warn("Failed to delete artwork blob", zap.String("ref", ref), zap.Error(err))
	}
}

func (s *orderServiceImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	// Any known status is accepted from any other; there is deliberately no
	// transition graph here.
	if !models.ValidOrderStatus(status) {
		return apperrors.Validation("Unknown order status: " + status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Order not found")
		}
		return apperrors.Internal("Failed to update order status", err)
	}
	return nil
}
