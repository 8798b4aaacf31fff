package controllers

import (
	"net/http"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/services"

	"github.com/gin-gonic/gin"
)

// SalaryController handles HTTP requests for the salary ledger and reports.
type SalaryController struct {
	financeService services.FinanceService
}

// NewSalaryController creates a new SalaryController.
func NewSalaryController(svc services.FinanceService) *SalaryController {
	return &SalaryController{financeService: svc}
}

// Create handles POST /salaries
func (sc *SalaryController) Create(ctx *gin.Context) {
	var req models.CreateSalaryRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	rec, svcErr := sc.financeService.CreateSalaryRecord(ctx.Request.Context(), &req)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"record": rec})
}

// Get handles GET /salaries/:code
func (sc *SalaryController) Get(ctx *gin.Context) {
	rec, err := sc.financeService.GetSalaryRecord(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"record": rec})
}

// List handles GET /salaries
func (sc *SalaryController) List(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)
	records, total, err := sc.financeService.ListSalaryRecords(ctx.Request.Context(), page, limit)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"records": records, "total": total, "page": page, "limit": limit})
}

// MarkPaid handles PATCH /salaries/:code/paid
func (sc *SalaryController) MarkPaid(ctx *gin.Context) {
	var req models.MarkPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	rec, svcErr := sc.financeService.MarkPaid(ctx.Request.Context(), ctx.Param("code"), *req.Paid)
	if svcErr != nil {
		apperrors.Respond(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"record": rec})
}

// Delete handles DELETE /salaries/:code
func (sc *SalaryController) Delete(ctx *gin.Context) {
	if err := sc.financeService.DeleteSalaryRecord(ctx.Request.Context(), ctx.Param("code")); err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Salary record deleted"})
}

// MonthlySummary handles GET /reports/summary?month=YYYY-MM
func (sc *SalaryController) MonthlySummary(ctx *gin.Context) {
	summary, err := sc.financeService.MonthlySummary(ctx.Request.Context(), ctx.Query("month"))
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"summary": summary})
}
