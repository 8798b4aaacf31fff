package models

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a stock ledger entry keyed by a business-facing code.
// Quantity never goes negative; removals that would underflow are rejected
// before mutation.
//
// No soft delete: Code is a reusable business key, and a soft-deleted row
// would keep occupying the unique index and block re-registering the code.
type InventoryItem struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code        string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"type:varchar(128);not null" json:"name"`
	Type        string    `gorm:"type:varchar(64)" json:"type"`
	Quantity    float64   `gorm:"not null;default:0" json:"quantity"`
	Unit        string    `gorm:"type:varchar(32)" json:"unit"`
	UnitPrice   float64   `gorm:"not null;default:0" json:"unit_price"`
	Threshold   float64   `gorm:"not null;default:0" json:"threshold"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsLow reports whether the item is at or below its low-stock threshold.
// Derived on read, never stored.
func (i *InventoryItem) IsLow() bool {
	return i.Quantity <= i.Threshold
}

// CreateInventoryItemRequest registers a new stock item.
type CreateInventoryItemRequest struct {
	Code      string  `json:"code" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Type      string  `json:"type"`
	Quantity  float64 `json:"quantity" binding:"gte=0"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price" binding:"gte=0"`
	Threshold float64 `json:"threshold" binding:"gte=0"`
}

// UpdateInventoryItemRequest edits item metadata. Stock levels move only
// through the add/remove operations.
type UpdateInventoryItemRequest struct {
	Name      *string  `json:"name"`
	Type      *string  `json:"type"`
	Unit      *string  `json:"unit"`
	UnitPrice *float64 `json:"unit_price" binding:"omitempty,gte=0"`
	Threshold *float64 `json:"threshold" binding:"omitempty,gte=0"`
}

// StockAdjustmentRequest adds or removes stock from an item.
type StockAdjustmentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}
