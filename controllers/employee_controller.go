package controllers

import (
	"net/http"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeController handles HTTP requests for employees and attendance.
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController.
func NewEmployeeController(svc services.EmployeeService) *EmployeeController {
	return &EmployeeController{employeeService: svc}
}

// Create handles POST /employees
func (ec *EmployeeController) Create(ctx *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	e, svcErr := ec.employeeService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"employee": e})
}

// Get handles GET /employees/:id
func (ec *EmployeeController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	e, svcErr := ec.employeeService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"employee": e})
}

// List handles GET /employees
func (ec *EmployeeController) List(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)
	employees, total, err := ec.employeeService.List(ctx.Request.Context(), page, limit)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"employees": employees, "total": total, "page": page, "limit": limit})
}

// Update handles PUT /employees/:id
func (ec *EmployeeController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	var req models.UpdateEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	e, svcErr := ec.employeeService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"employee": e})
}

// Delete handles DELETE /employees/:id
func (ec *EmployeeController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	if svcErr := ec.employeeService.Delete(ctx.Request.Context(), id); svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// RecordAttendance handles POST /employees/:id/attendance
func (ec *EmployeeController) RecordAttendance(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	var req models.RecordAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	record, svcErr := ec.employeeService.RecordAttendance(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"attendance": record})
}

// ListAttendance handles GET /employees/:id/attendance
func (ec *EmployeeController) ListAttendance(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee id"})
		return
	}

	records, svcErr := ec.employeeService.ListAttendance(ctx.Request.Context(), id)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"attendance": records})
}
