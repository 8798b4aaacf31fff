package controllers

import (
	"fmt"
	"net/http"

	"stitchworks-api/apperrors"
	"stitchworks-api/invoice"
	"stitchworks-api/models"
	"stitchworks-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderController handles HTTP requests for orders.
type OrderController struct {
	orderService services.OrderService
	renderer     *invoice.Renderer
}

// NewOrderController creates a new OrderController.
func NewOrderController(svc services.OrderService, renderer *invoice.Renderer) *OrderController {
	return &OrderController{orderService: svc, renderer: renderer}
}

// Create handles POST /orders
func (oc *OrderController) Create(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, err := oc.orderService.Create(ctx.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	resp := gin.H{"order": result.Order}
	if result.NotifyErr != nil {
		resp["warning"] = result.NotifyErr.Error()
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Get handles GET /orders/:id
func (oc *OrderController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, svcErr := oc.orderService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// List handles GET /orders
func (oc *OrderController) List(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)
	orders, total, err := oc.orderService.List(ctx.Request.Context(), page, limit)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders, "total": total, "page": page, "limit": limit})
}

// Update handles PUT /orders/:id
func (oc *OrderController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req models.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// Delete handles DELETE /orders/:id
func (oc *OrderController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	if svcErr := oc.orderService.Delete(ctx.Request.Context(), id); svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// SetStatus handles PATCH /orders/:id/status
func (oc *OrderController) SetStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req models.SetOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := oc.orderService.SetStatus(ctx.Request.Context(), id, req.Status); svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Status updated", "status": req.Status})
}

// Invoice handles GET /orders/:id/invoice
func (oc *OrderController) Invoice(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, svcErr := oc.orderService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}

	pdfBytes, err := oc.renderer.Render(order)
	if err != nil {
		apperrors.Respond(ctx, apperrors.External("Failed to render invoice", err))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.ID))
	ctx.Data(http.StatusOK, "application/pdf", pdfBytes)
}
