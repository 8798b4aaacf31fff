package services_test

import (
	"context"
	"testing"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newDeliveryFixture(t *testing.T) (services.DeliveryService, *fakeOrderRepo, *fakeDeliveryRepo) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	deliveryRepo := newFakeDeliveryRepo()
	svc := services.NewDeliveryService(deliveryRepo, orderRepo, zap.NewNop())
	return svc, orderRepo, deliveryRepo
}

func seedOrder(t *testing.T, repo *fakeOrderRepo, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		CustomerName: "Kamala Silva",
		Email:        "kamala@example.com",
		Mobile:       "0719876543",
		Address:      "5 Temple Lane, Kandy",
		Material:     "linen",
		Quantity:     12,
		Status:       status,
	}
	assert.NoError(t, repo.Create(context.Background(), order))
	return order
}

func TestReconcileIsIdempotent(t *testing.T) {
	svc, orderRepo, deliveryRepo := newDeliveryFixture(t)

	first := seedOrder(t, orderRepo, models.OrderStatusPending)
	second := seedOrder(t, orderRepo, models.OrderStatusPending)
	seedOrder(t, orderRepo, models.OrderStatusCompleted)

	created, err := svc.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, created)

	// A second pass finds nothing to do.
	created, err = svc.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, created)

	for _, order := range []*models.Order{first, second} {
		d, err := deliveryRepo.FindByOrderID(context.Background(), order.ID)
		assert.NoError(t, err)
		assert.Equal(t, models.DeliveryStatusPending, d.Status)
		assert.Equal(t, order.CustomerName, d.CustomerName)
		assert.Equal(t, order.Address, d.Address)
		assert.Nil(t, d.AssignedTo)
	}
}

func TestAssignDriverDefaultsToInProgress(t *testing.T) {
	svc, orderRepo, deliveryRepo := newDeliveryFixture(t)
	order := seedOrder(t, orderRepo, models.OrderStatusPending)
	_, err := svc.Reconcile(context.Background())
	assert.NoError(t, err)
	d, err := deliveryRepo.FindByOrderID(context.Background(), order.ID)
	assert.NoError(t, err)

	updated, err := svc.AssignDriver(context.Background(), d.ID, &models.AssignDriverRequest{DriverID: "driver-7"})
	assert.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusInProgress, updated.Status)
	if assert.NotNil(t, updated.AssignedTo) {
		assert.Equal(t, "driver-7", *updated.AssignedTo)
	}
	assert.Nil(t, updated.CompletedAt)
}

func TestAssignDriverDeliveredCompletesParentOrder(t *testing.T) {
	svc, orderRepo, deliveryRepo := newDeliveryFixture(t)
	order := seedOrder(t, orderRepo, models.OrderStatusPending)
	_, err := svc.Reconcile(context.Background())
	assert.NoError(t, err)
	d, err := deliveryRepo.FindByOrderID(context.Background(), order.ID)
	assert.NoError(t, err)

	updated, err := svc.AssignDriver(context.Background(), d.ID, &models.AssignDriverRequest{
		DriverID: "driver-3",
		Status:   models.DeliveryStatusDelivered,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusDelivered, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	parent, err := orderRepo.FindByID(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCompleted, parent.Status)
}

func TestAssignDriverValidation(t *testing.T) {
	svc, orderRepo, deliveryRepo := newDeliveryFixture(t)
	order := seedOrder(t, orderRepo, models.OrderStatusPending)
	_, err := svc.Reconcile(context.Background())
	assert.NoError(t, err)
	d, err := deliveryRepo.FindByOrderID(context.Background(), order.ID)
	assert.NoError(t, err)

	_, err = svc.AssignDriver(context.Background(), d.ID, &models.AssignDriverRequest{
		DriverID: "driver-1",
		Status:   "teleported",
	})
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.AssignDriver(context.Background(), uuid.New(), &models.AssignDriverRequest{DriverID: "driver-1"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRemoveDriverResetsDelivery(t *testing.T) {
	svc, orderRepo, deliveryRepo := newDeliveryFixture(t)
	order := seedOrder(t, orderRepo, models.OrderStatusPending)
	_, err := svc.Reconcile(context.Background())
	assert.NoError(t, err)
	d, err := deliveryRepo.FindByOrderID(context.Background(), order.ID)
	assert.NoError(t, err)

	_, err = svc.AssignDriver(context.Background(), d.ID, &models.AssignDriverRequest{DriverID: "driver-9"})
	assert.NoError(t, err)

	cleared, err := svc.RemoveDriver(context.Background(), d.ID)
	assert.NoError(t, err)
	assert.Nil(t, cleared.AssignedTo)
	assert.Equal(t, models.DeliveryStatusPending, cleared.Status)
	assert.Nil(t, cleared.CompletedAt)
}

func TestDeleteDeliveryResetsParentOrder(t *testing.T) {
	svc, orderRepo, deliveryRepo := newDeliveryFixture(t)
	order := seedOrder(t, orderRepo, models.OrderStatusPending)
	_, err := svc.Reconcile(context.Background())
	assert.NoError(t, err)
	d, err := deliveryRepo.FindByOrderID(context.Background(), order.ID)
	assert.NoError(t, err)

	// Move the order along, then drop its delivery.
	assert.NoError(t, orderRepo.UpdateStatus(context.Background(), order.ID, models.OrderStatusInProgress))
	assert.NoError(t, svc.Delete(context.Background(), d.ID))

	parent, err := orderRepo.FindByID(context.Background(), order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, parent.Status)

	// The next pass recreates the fulfillment record.
	created, err := svc.Reconcile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	_, err = deliveryRepo.FindByOrderID(context.Background(), order.ID)
	assert.NoError(t, err)
}

func TestDeleteDeliveryNotFound(t *testing.T) {
	svc, _, _ := newDeliveryFixture(t)
	err := svc.Delete(context.Background(), uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}
