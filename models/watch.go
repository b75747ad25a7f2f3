package models

import (
	"math"
	"time"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Watch struct {
	ID            uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string           `gorm:"not null" json:"name"`
	Slug          string           `gorm:"uniqueIndex;not null" json:"slug"`
	BrandID       uint             `gorm:"index;not null" json:"brand_id"`
	Brand         Brand            `gorm:"foreignKey:BrandID" json:"brand"`
	CategoryID    *uint            `gorm:"index" json:"category_id"`
	Category      *Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	OriginalPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"original_price"`

	// Specifications
	CaseMaterial    string `json:"case_material"`
	CaseDiameter    string `json:"case_diameter"`
	Movement        string `json:"movement"`
	WaterResistance string `json:"water_resistance"`
	StrapMaterial   string `json:"strap_material"`
	DialColor       string `json:"dial_color"`
	Crystal         string `json:"crystal"`
	PowerReserve    string `json:"power_reserve"`
	ReferenceNumber string `json:"reference_number"`

	// Stock and IsActive carry no column defaults: zero and false are
	// storable values (sold-out, delisted) and must survive an insert.
	// Admin create fills in the stock-10/active defaults instead.
	Stock        int       `json:"stock"`
	IsFeatured   bool      `json:"is_featured"`
	IsNewArrival bool      `json:"is_new_arrival"`
	IsBestseller bool      `json:"is_bestseller"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WatchSlug derives the catalog slug from brand and model names.
func WatchSlug(brandName, watchName string) string {
	return slug.Make(brandName + " " + watchName)
}

// InStock is a derived read of the stock counter. Stock is not bounded at
// write time, so a negative value still reports out of stock.
func (w *Watch) InStock() bool {
	return w.Stock > 0
}

// DiscountPercentage is the integer percent off relative to the original
// price, or 0 when there is no markdown.
func (w *Watch) DiscountPercentage() int {
	if w.OriginalPrice == nil || !w.OriginalPrice.GreaterThan(w.Price) {
		return 0
	}
	diff := w.OriginalPrice.Sub(w.Price).Div(*w.OriginalPrice)
	return int(diff.Mul(decimal.NewFromInt(100)).IntPart())
}

// AvgRating computes the mean review rating on read, rounded to one decimal.
// Zero reviews yields 0.
func (w *Watch) AvgRating(db *gorm.DB) float64 {
	var avg *float64
	if err := db.Model(&Review{}).Where("watch_id = ?", w.ID).
		Select("AVG(rating)").Scan(&avg).Error; err != nil || avg == nil {
		return 0
	}
	return math.Round(*avg*10) / 10
}

func (w *Watch) ReviewCount(db *gorm.DB) int64 {
	var n int64
	db.Model(&Review{}).Where("watch_id = ?", w.ID).Count(&n)
	return n
}
