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

// FinanceService owns the salary ledger and the monthly finance rollup.
type FinanceService interface {
	CreateSalaryRecord(ctx context.Context, req *models.CreateSalaryRecordRequest) (*models.SalaryRecord, error)
	GetSalaryRecord(ctx context.Context, code string) (*models.SalaryRecord, error)
	ListSalaryRecords(ctx context.Context, page, limit int) ([]models.SalaryRecord, int64, error)
	MarkPaid(ctx context.Context, code string, paid bool) (*models.SalaryRecord, error)
	DeleteSalaryRecord(ctx context.Context, code string) error
	// MonthlySummary computes the income/expense/profit rollup for an
	// explicit "YYYY-MM" month, or for the trailing 30 days when month is
	// empty. Recomputed on every call, never cached.
	MonthlySummary(ctx context.Context, month string) (*models.MonthlySummary, error)
}

type financeServiceImpl struct {
	salaryRepo    repository.SalaryRepository
	orderRepo     repository.OrderRepository
	inventoryRepo repository.InventoryRepository
	logger        *zap.Logger
	now           func() time.Time
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(
	salaryRepo repository.SalaryRepository,
	orderRepo repository.OrderRepository,
	inventoryRepo repository.InventoryRepository,
	logger *zap.Logger,
) FinanceService {
	return &financeServiceImpl{
		salaryRepo:    salaryRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *financeServiceImpl) CreateSalaryRecord(ctx context.Context, req *models.CreateSalaryRecordRequest) (*models.SalaryRecord, error) {
	if req.Amount <= 0 {
		return nil, apperrors.Validation("Amount must be a positive number")
	}
	rec := &models.SalaryRecord{
		Code:         req.Code,
		EmployeeName: req.EmployeeName,
		Role:         req.Role,
		Amount:       req.Amount,
		PaymentDate:  req.PaymentDate,
	}
	if err := s.salaryRepo.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("Salary record code already exists: " + req.Code)
		}
		return nil, apperrors.Internal("Failed to create salary record", err)
	}
	return rec, nil
}

func (s *financeServiceImpl) GetSalaryRecord(ctx context.Context, code string) (*models.SalaryRecord, error) {
	rec, err := s.salaryRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Salary record not found: " + code)
		}
		return nil, apperrors.Internal("Failed to fetch salary record", err)
	}
	return rec, nil
}

func (s *financeServiceImpl) ListSalaryRecords(ctx context.Context, page, limit int) ([]models.SalaryRecord, int64, error) {
	records, total, err := s.salaryRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list salary records", err)
	}
	return records, total, nil
}

func (s *financeServiceImpl) MarkPaid(ctx context.Context, code string, paid bool) (*models.SalaryRecord, error) {
	if err := s.salaryRepo.SetPaid(ctx, code, paid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Salary record not found: " + code)
		}
		return nil, apperrors.Internal("Failed to update salary record", err)
	}
	return s.GetSalaryRecord(ctx, code)
}

func (s *financeServiceImpl) DeleteSalaryRecord(ctx context.Context, code string) error {
	if err := s.salaryRepo.Delete(ctx, code); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Salary record not found: " + code)
		}
		return apperrors.Internal("Failed to delete salary record", err)
	}
	return nil
}

func (s *financeServiceImpl) MonthlySummary(ctx context.Context, month string) (*models.MonthlySummary, error) {
	var from, to time.Time
	if month == "" {
		to = s.now().UTC()
		from = to.Add(-30 * 24 * time.Hour)
	} else {
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, apperrors.Validation("Month must be in YYYY-MM format")
		}
		from = start
		to = start.AddDate(0, 1, 0)
	}

	income, err := s.orderRepo.SumTotalsBetween(ctx, from, to)
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate order income", err)
	}
	salaryExpense, err := s.salaryRepo.SumAmountBetween(ctx, from, to)
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate salary expense", err)
	}
	inventoryExpense, err := s.inventoryRepo.TotalValuation(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate inventory valuation", err)
	}

	return &models.MonthlySummary{
		PeriodStart:      from,
		PeriodEnd:        to,
		Income:           income,
		SalaryExpense:    salaryExpense,
		InventoryExpense: inventoryExpense,
		Profit:           income - (salaryExpense + inventoryExpense),
	}, nil
}
