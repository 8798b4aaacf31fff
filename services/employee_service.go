package services

import (
	"context"
	"errors"
	"math"
	"time"

	"stitchworks-api/apperrors"
	"stitchworks-api/models"
	"stitchworks-api/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService owns employee records and per-day attendance.
type EmployeeService interface {
	Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	List(ctx context.Context, page, limit int) ([]models.Employee, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RecordAttendance(ctx context.Context, employeeID uuid.UUID, req *models.RecordAttendanceRequest) (*models.Attendance, error)
	ListAttendance(ctx context.Context, employeeID uuid.UUID) ([]models.Attendance, error)
}

type employeeServiceImpl struct {
	repo   repository.EmployeeRepository
	logger *zap.Logger
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repository.EmployeeRepository, logger *zap.Logger) EmployeeService {
	return &employeeServiceImpl{repo: repo, logger: logger}
}

// ComputeHoursWorked derives hours from an in/out pair: (out - in) in hours
// rounded to 2 decimals, 0 when out <= in or either side is missing.
func ComputeHoursWorked(in, out *time.Time) float64 {
	if in == nil || out == nil {
		return 0
	}
	hours := out.Sub(*in).Hours()
	if hours <= 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

func (s *employeeServiceImpl) Create(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("Employee name is required")
	}
	e := &models.Employee{
		Name:       req.Name,
		Contact:    req.Contact,
		Role:       req.Role,
		Department: req.Department,
		BaseSalary: req.BaseSalary,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apperrors.Internal("Failed to create employee", err)
	}
	return e, nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Employee not found")
		}
		return nil, apperrors.Internal("Failed to fetch employee", err)
	}
	return e, nil
}

func (s *employeeServiceImpl) List(ctx context.Context, page, limit int) ([]models.Employee, int64, error) {
	employees, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list employees", err)
	}
	return employees, total, nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, id uuid.UUID, req *models.UpdateEmployeeRequest) (*models.Employee, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Contact != nil {
		e.Contact = *req.Contact
	}
	if req.Role != nil {
		e.Role = *req.Role
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.BaseSalary != nil {
		e.BaseSalary = *req.BaseSalary
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, apperrors.Internal("Failed to update employee", err)
	}
	return e, nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("Employee not found")
		}
		return apperrors.Internal("Failed to delete employee", err)
	}
	return nil
}

func (s *employeeServiceImpl) RecordAttendance(ctx context.Context, employeeID uuid.UUID, req *models.RecordAttendanceRequest) (*models.Attendance, error) {
	if _, err := s.Get(ctx, employeeID); err != nil {
		return nil, err
	}

	record := &models.Attendance{
		EmployeeID:  employeeID,
		Date:        req.Date,
		InTime:      req.InTime,
		OutTime:     req.OutTime,
		HoursWorked: ComputeHoursWorked(req.InTime, req.OutTime),
	}
	if err := s.repo.UpsertAttendance(ctx, record); err != nil {
		return nil, apperrors.Internal("Failed to record attendance", err)
	}

	s.logger.Info("Attendance recorded",
		zap.String("employee_id", employeeID.String()),
		zap.Time("date", req.Date),
		zap.Float64("hours", record.HoursWorked),
	)
	return record, nil
}

func (s *employeeServiceImpl) ListAttendance(ctx context.Context, employeeID uuid.UUID) ([]models.Attendance, error) {
	records, err := s.repo.ListAttendance(ctx, employeeID)
	if err != nil {
		return nil, apperrors.Internal("Failed to list attendance", err)
	}
	return records, nil
}
