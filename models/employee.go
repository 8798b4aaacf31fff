package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is a shop worker record.
type Employee struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string         `gorm:"type:varchar(128);not null" json:"name"`
	Contact    string         `gorm:"type:varchar(64)" json:"contact"`
	Role       string         `gorm:"type:varchar(64)" json:"role"`
	Department string         `gorm:"type:varchar(64)" json:"department"`
	BaseSalary float64        `gorm:"not null;default:0" json:"base_salary"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Attendance []Attendance `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"attendance,omitempty"`
}

// Attendance is a per-day in/out record. HoursWorked is derived from the
// in/out pair on every update: (out - in) in hours, rounded to 2 decimals,
// clamped to 0 when out <= in or either side is missing.
type Attendance struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date" json:"employee_id"`
	Date        time.Time  `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date" json:"date"`
	InTime      *time.Time `json:"in_time,omitempty"`
	OutTime     *time.Time `json:"out_time,omitempty"`
	HoursWorked float64    `gorm:"not null;default:0" json:"hours_worked"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// CreateEmployeeRequest registers an employee.
type CreateEmployeeRequest struct {
	Name       string  `json:"name" binding:"required"`
	Contact    string  `json:"contact"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	BaseSalary float64 `json:"base_salary" binding:"gte=0"`
}

// UpdateEmployeeRequest edits an employee. Nil pointers keep stored values.
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name"`
	Contact    *string  `json:"contact"`
	Role       *string  `json:"role"`
	Department *string  `json:"department"`
	BaseSalary *float64 `json:"base_salary" binding:"omitempty,gte=0"`
}

// RecordAttendanceRequest upserts the attendance record for a day.
type RecordAttendanceRequest struct {
	Date    time.Time  `json:"date" binding:"required"`
	InTime  *time.Time `json:"in_time"`
	OutTime *time.Time `json:"out_time"`
}
