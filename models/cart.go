package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the flat tax applied at checkout.
var TaxRate = decimal.NewFromFloat(0.18)

// Cart belongs to exactly one authenticated user or one anonymous session
// key. The two unique indexes enforce one cart per identity; the mutual
// exclusivity of the two owners is assumed, not validated.
type Cart struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     *uint      `gorm:"uniqueIndex" json:"user_id"`
	SessionKey *string    `gorm:"uniqueIndex" json:"session_key"`
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartItem holds a (cart, watch) pair; the composite unique index makes
// repeat adds merge into the existing row instead of creating another.
type CartItem struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	CartID   uint  `gorm:"uniqueIndex:idx_cart_items_cart_watch;index" json:"cart_id"`
	WatchID  uint  `gorm:"uniqueIndex:idx_cart_items_cart_watch;not null" json:"watch_id"`
	Watch    Watch `gorm:"foreignKey:WatchID;constraint:OnDelete:CASCADE" json:"watch"`
	Quantity int   `gorm:"not null;default:1" json:"quantity"`
}

// LineTotal prices the row at the watch's current price. Requires Watch to
// be preloaded.
func (ci *CartItem) LineTotal() decimal.Decimal {
	return ci.Watch.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

// TotalItems is the sum of item quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// Tax is round(subtotal * 0.18, 2).
func (c *Cart) Tax() decimal.Decimal {
	return c.Subtotal().Mul(TaxRate).Round(2)
}

// Total is round(subtotal + tax, 2). Tax and total round independently from
// the unrounded subtotal, so total can differ from a naive sum by a cent.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Tax()).Round(2)
}
