package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order status constants.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// PriceDetails is the derived price breakdown embedded in an order.
// Invariants: Subtotal = Quantity * UnitPrice, Total = Subtotal + ArtworkFee,
// Advance + Balance = Total.
type PriceDetails struct {
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	Subtotal   float64 `gorm:"not null" json:"subtotal"`
	ArtworkFee float64 `gorm:"not null;default:0" json:"artwork_fee"`
	Total      float64 `gorm:"not null" json:"total"`
	Advance    float64 `gorm:"not null" json:"advance"`
	Balance    float64 `gorm:"not null" json:"balance"`
}

// Order is a customer's garment production request.
type Order struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(128);not null" json:"customer_name"`
	Email        string    `gorm:"type:varchar(128);not null" json:"email"`
	Mobile       string    `gorm:"type:varchar(32);not null" json:"mobile"`
	Address      string    `gorm:"type:text;not null" json:"address"`
	Material     string    `gorm:"type:varchar(128);not null" json:"material"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Artwork      bool      `gorm:"not null;default:false" json:"artwork"`
	ArtworkText  string    `gorm:"type:text" json:"artwork_text,omitempty"`
	// ArtworkImage is a reference into the artwork blob store, not a file path.
	ArtworkImage string         `gorm:"type:varchar(512)" json:"artwork_image,omitempty"`
	Price        PriceDetails   `gorm:"embedded;embeddedPrefix:price_" json:"price_details"`
	Status       string         `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// PriceInput carries optional caller-supplied price fields. A zero field means
// "derive it"; a non-zero field overrides the derived value, per field.
type PriceInput struct {
	UnitPrice  float64 `json:"unit_price"`
	Subtotal   float64 `json:"subtotal"`
	ArtworkFee float64 `json:"artwork_fee"`
	Total      float64 `json:"total"`
	Advance    float64 `json:"advance"`
	Balance    float64 `json:"balance"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerName string     `json:"customer_name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Mobile       string     `json:"mobile" binding:"required"`
	Address      string     `json:"address" binding:"required"`
	Material     string     `json:"material" binding:"required"`
	Quantity     int        `json:"quantity" binding:"required,min=1"`
	Artwork      bool       `json:"artwork"`
	ArtworkText  string     `json:"artwork_text"`
	ArtworkImage string     `json:"artwork_image"`
	Price        PriceInput `json:"price"`
}

// UpdateOrderRequest is the payload for editing an order. Nil pointers leave
// the stored value untouched; pricing is re-derived from the result.
type UpdateOrderRequest struct {
	CustomerName *string    `json:"customer_name"`
	Email        *string    `json:"email" binding:"omitempty,email"`
	Mobile       *string    `json:"mobile"`
	Address      *string    `json:"address"`
	Material     *string    `json:"material"`
	Quantity     *int       `json:"quantity" binding:"omitempty,min=1"`
	Artwork      *bool      `json:"artwork"`
	ArtworkText  *string    `json:"artwork_text"`
	ArtworkImage *string    `json:"artwork_image"`
	Price        PriceInput `json:"price"`
}

// SetOrderStatusRequest changes an order's status.
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
