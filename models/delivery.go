package models

import (
	"time"

	"github.com/google/uuid"
)

// Delivery status constants.
const (
	DeliveryStatusPending    = "pending"
	DeliveryStatusInProgress = "in_progress"
	DeliveryStatusDelivered  = "delivered"
	DeliveryStatusCancelled  = "cancelled"
)

// ValidDeliveryStatus reports whether s is a known delivery status.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInProgress, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	}
	return false
}

// Delivery is the fulfillment record for an order. CustomerName and Address
// are point-in-time snapshots taken when the delivery is created; they are
// not kept in sync with the parent order. The unique index on OrderID backs
// the at-most-one-delivery-per-order invariant.
//
// No soft delete: a soft-deleted row would still occupy the order_id unique
// index and block the reconciliation pass from ever recreating a delivery
// for the order. Deletion is a physical admin action.
type Delivery struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	CustomerName  string     `gorm:"type:varchar(128);not null" json:"customer_name"`
	Address       string     `gorm:"type:text;not null" json:"address"`
	AssignedTo    *string    `gorm:"type:varchar(128)" json:"assigned_to,omitempty"`
	Status        string     `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// AssignDriverRequest assigns a driver to a delivery. Status is optional and
// defaults to in_progress.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
	Status   string `json:"status"`
}
