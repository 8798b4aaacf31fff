package controllers

import (
	"net/http"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeliveryController handles HTTP requests for deliveries.
type DeliveryController struct {
	deliveryService services.DeliveryService
}

// NewDeliveryController creates a new DeliveryController.
func NewDeliveryController(svc services.DeliveryService) *DeliveryController {
	return &DeliveryController{deliveryService: svc}
}

// List handles GET /deliveries
func (dc *DeliveryController) List(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)
	deliveries, total, err := dc.deliveryService.List(ctx.Request.Context(), page, limit)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deliveries": deliveries, "total": total, "page": page, "limit": limit})
}

// Get handles GET /deliveries/:id
func (dc *DeliveryController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery id"})
		return
	}

	d, svcErr := dc.deliveryService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"delivery": d})
}

// Reconcile handles POST /deliveries/reconcile
func (dc *DeliveryController) Reconcile(ctx *gin.Context) {
	created, err := dc.deliveryService.Reconcile(ctx.Request.Context())
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"created": created})
}

// AssignDriver handles PATCH /deliveries/:id/assign
func (dc *DeliveryController) AssignDriver(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery id"})
		return
	}

	var req models.AssignDriverRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	d, svcErr := dc.deliveryService.AssignDriver(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"delivery": d})
}

// RemoveDriver handles PATCH /deliveries/:id/unassign
func (dc *DeliveryController) RemoveDriver(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery id"})
		return
	}

	d, svcErr := dc.deliveryService.RemoveDriver(ctx.Request.Context(), id)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"delivery": d})
}

// Delete handles DELETE /deliveries/:id
func (dc *DeliveryController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery id"})
		return
	}

	if svcErr := dc.deliveryService.Delete(ctx.Request.Context(), id); svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Delivery deleted, order reset to pending"})
}
