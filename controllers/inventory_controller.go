package controllers

import (
	"net/http"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/services"

	"github.com/gin-gonic/gin"
)

// InventoryController handles HTTP requests for inventory items.
type InventoryController struct {
	inventoryService services.InventoryService
}

// NewInventoryController creates a new InventoryController.
func NewInventoryController(svc services.InventoryService) *InventoryController {
	return &InventoryController{inventoryService: svc}
}

// Create handles POST /inventory
func (ic *InventoryController) Create(ctx *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := ic.inventoryService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"item": item})
}

// Get handles GET /inventory/:code
func (ic *InventoryController) Get(ctx *gin.Context) {
	item, err := ic.inventoryService.Get(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"item": item, "low": item.IsLow()})
}

// List handles GET /inventory
func (ic *InventoryController) List(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)
	items, total, err := ic.inventoryService.List(ctx.Request.Context(), page, limit)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// LowStock handles GET /inventory/low
func (ic *InventoryController) LowStock(ctx *gin.Context) {
	items, err := ic.inventoryService.LowStock(ctx.Request.Context())
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

// Update handles PUT /inventory/:code
func (ic *InventoryController) Update(ctx *gin.Context) {
	var req models.UpdateInventoryItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := ic.inventoryService.Update(ctx.Request.Context(), ctx.Param("code"), &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"item": item})
}

// Delete handles DELETE /inventory/:code
func (ic *InventoryController) Delete(ctx *gin.Context) {
	if err := ic.inventoryService.Delete(ctx.Request.Context(), ctx.Param("code")); err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted"})
}

// AddStock handles POST /inventory/:code/add
func (ic *InventoryController) AddStock(ctx *gin.Context) {
	var req models.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := ic.inventoryService.AddStock(ctx.Request.Context(), ctx.Param("code"), req.Amount)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"item": item, "low": item.IsLow()})
}

// RemoveStock handles POST /inventory/:code/remove
func (ic *InventoryController) RemoveStock(ctx *gin.Context) {
	var req models.StockAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, svcErr := ic.inventoryService.RemoveStock(ctx.Request.Context(), ctx.Param("code"), req.Amount)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"item": item, "low": item.IsLow()})
}
