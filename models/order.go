package models

import (
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed by the store
	OrderStatusShipped   OrderStatus = "shipped"   // out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // customer received the order
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before shipping
)

// ParseOrderStatus maps a request string to a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// statusTransitions is the forward flow plus cancellation before shipping.
// It is only consulted when strict transitions are enabled; otherwise any
// status may be set to any other (admin override).
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransition reports whether from -> to is part of the enforced graph.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NewOrderNumber returns "LW-" plus 8 uppercase hex characters from a random
// UUID. Assigned once at creation; a unique index backs it up.
func NewOrderNumber() string {
	u := uuid.New()
	return "LW-" + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// Order is an immutable snapshot of a completed purchase; only its status
// changes after creation. Shipping fields are copied verbatim from the
// selected address at checkout and never re-validated against it.
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	User        User   `gorm:"foreignKey:UserID" json:"-"`

	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `gorm:"not null" json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `gorm:"default:India" json:"country"`

	Subtotal decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Tax      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax"`
	Total    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod string      `gorm:"default:cod" json:"payment_method"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber()
	}
	return nil
}

// OrderItem is a denormalized line item preserving the name, brand and price
// at time of purchase. The watch reference is kept for convenience and goes
// null if the watch is later deleted.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"index" json:"order_id"`
	WatchID    *uint           `json:"watch_id"`
	Watch      *Watch          `gorm:"foreignKey:WatchID;constraint:OnDelete:SET NULL" json:"-"`
	WatchName  string          `gorm:"not null" json:"watch_name"`
	WatchBrand string          `json:"watch_brand"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity   int             `gorm:"not null;default:1" json:"quantity"`
}

func (oi *OrderItem) LineTotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
