package models

import (
	"time"

	"github.com/google/uuid"
)

// SalaryRecord is a denormalized payroll ledger entry keyed by a
// business-facing code. It intentionally carries no foreign key to Employee.
//
// No soft delete: Code is a reusable business key, so deletion must free
// the unique index for re-registration.
type SalaryRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code         string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	EmployeeName string    `gorm:"type:varchar(128);not null" json:"employee_name"`
	Role         string    `gorm:"type:varchar(64)" json:"role"`
	Amount       float64   `gorm:"not null" json:"amount"`
	PaymentDate  time.Time `gorm:"not null;index" json:"payment_date"`
	Paid         bool      `gorm:"not null;default:false" json:"paid"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateSalaryRecordRequest registers a salary ledger entry.
type CreateSalaryRecordRequest struct {
	Code         string    `json:"code" binding:"required"`
	EmployeeName string    `json:"employee_name" binding:"required"`
	Role         string    `json:"role"`
	Amount       float64   `json:"amount" binding:"required,gt=0"`
	PaymentDate  time.Time `json:"payment_date" binding:"required"`
}

// MarkPaidRequest flips the paid flag on a salary record.
type MarkPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// MonthlySummary is the read-only finance rollup. Recomputed on every
// request; the underlying ledgers mutate independently.
type MonthlySummary struct {
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	Income           float64   `json:"income"`
	SalaryExpense    float64   `json:"salary_expense"`
	InventoryExpense float64   `json:"inventory_expense"`
	Profit           float64   `json:"profit"`
}
