package services_test

import (
	"context"
	"sync"
	"testing"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newInventoryFixture(t *testing.T) (services.InventoryService, *fakeInventoryRepo) {
	t.Helper()
	repo := newFakeInventoryRepo()
	return services.NewInventoryService(repo, zap.NewNop()), repo
}

func seedItem(t *testing.T, svc services.InventoryService, code string, quantity, threshold float64) *models.InventoryItem {
	t.Helper()
	item, err := svc.Create(context.Background(), &models.CreateInventoryItemRequest{
		Code:      code,
		Name:      "White cotton fabric",
		Type:      "fabric",
		Quantity:  quantity,
		Unit:      "m",
		UnitPrice: 450,
		Threshold: threshold,
	})
	assert.NoError(t, err)
	return item
}

func TestCreateInventoryItemDuplicateCode(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 100, 20)

	_, err := svc.Create(context.Background(), &models.CreateInventoryItemRequest{
		Code: "FAB-001",
		Name: "Another fabric",
	})
	assert.True(t, apperrors.IsConflict(err))
}

func TestDeleteInventoryItemFreesCode(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 100, 20)

	assert.NoError(t, svc.Delete(context.Background(), "FAB-001"))

	// The code is a reusable business key: re-registering it after a
	// delete must succeed, not trip the duplicate guard.
	item := seedItem(t, svc, "FAB-001", 50, 10)
	assert.Equal(t, float64(50), item.Quantity)
}

func TestStockAdjustmentValidation(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 100, 20)

	for _, amount := range []float64{0, -5} {
		_, err := svc.AddStock(context.Background(), "FAB-001", amount)
		assert.True(t, apperrors.IsValidation(err))
		_, err = svc.RemoveStock(context.Background(), "FAB-001", amount)
		assert.True(t, apperrors.IsValidation(err))
	}
}

func TestAddAndRemoveStock(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 100, 20)

	item, err := svc.AddStock(context.Background(), "FAB-001", 25.5)
	assert.NoError(t, err)
	assert.Equal(t, 125.5, item.Quantity)

	item, err = svc.RemoveStock(context.Background(), "FAB-001", 5.5)
	assert.NoError(t, err)
	assert.Equal(t, float64(120), item.Quantity)
}

func TestRemoveStockInsufficientLeavesQuantityUnchanged(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 10, 2)

	_, err := svc.RemoveStock(context.Background(), "FAB-001", 10.5)
	assert.True(t, apperrors.IsInsufficientStock(err))

	item, err := svc.Get(context.Background(), "FAB-001")
	assert.NoError(t, err)
	assert.Equal(t, float64(10), item.Quantity)
}

func TestRemoveStockToExactlyZero(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "THR-002", 8, 5)

	item, err := svc.RemoveStock(context.Background(), "THR-002", 8)
	assert.NoError(t, err)
	assert.Zero(t, item.Quantity)
	assert.True(t, item.IsLow())
}

func TestRemoveStockRacingPair(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 10, 2)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.RemoveStock(context.Background(), "FAB-001", 7)
		}(i)
	}
	wg.Wait()

	// Exactly one of the two removals of 7 from a stock of 10 may succeed.
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, apperrors.IsInsufficientStock(err))
		}
	}
	assert.Equal(t, 1, succeeded)

	item, err := svc.Get(context.Background(), "FAB-001")
	assert.NoError(t, err)
	assert.Equal(t, float64(3), item.Quantity)
}

func TestLowStockFilter(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 100, 20)
	seedItem(t, svc, "THR-002", 5, 5)
	seedItem(t, svc, "BTN-003", 2, 10)

	low, err := svc.LowStock(context.Background())
	assert.NoError(t, err)

	codes := make([]string, 0, len(low))
	for _, item := range low {
		codes = append(codes, item.Code)
	}
	assert.ElementsMatch(t, []string{"THR-002", "BTN-003"}, codes)
}

func TestUpdateInventoryItemMetadata(t *testing.T) {
	svc, _ := newInventoryFixture(t)
	seedItem(t, svc, "FAB-001", 100, 20)

	name := "Off-white cotton fabric"
	price := 475.0
	item, err := svc.Update(context.Background(), "FAB-001", &models.UpdateInventoryItemRequest{
		Name:      &name,
		UnitPrice: &price,
	})
	assert.NoError(t, err)
	assert.Equal(t, name, item.Name)
	assert.Equal(t, price, item.UnitPrice)
	// Quantity only moves through the add/remove operations.
	assert.Equal(t, float64(100), item.Quantity)
}

func TestInventoryNotFound(t *testing.T) {
	svc, _ := newInventoryFixture(t)

	_, err := svc.Get(context.Background(), "NOPE")
	assert.True(t, apperrors.IsNotFound(err))
	_, err = svc.AddStock(context.Background(), "NOPE", 1)
	assert.True(t, apperrors.IsNotFound(err))
	_, err = svc.RemoveStock(context.Background(), "NOPE", 1)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, apperrors.IsNotFound(svc.Delete(context.Background(), "NOPE")))
}
