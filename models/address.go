package models

import (
	"time"

	"gorm.io/gorm"
)

// Address is a saved shipping address. At most one address per user is the
// default; saving a default clears the flag on the rest.
type Address struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `gorm:"not null" json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	City         string    `gorm:"not null" json:"city"`
	State        string    `gorm:"not null" json:"state"`
	PostalCode   string    `gorm:"not null" json:"postal_code"`
	Country      string    `gorm:"default:India" json:"country"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Address) AfterSave(tx *gorm.DB) error {
	if !a.IsDefault {
		return nil
	}
	return tx.Model(&Address{}).
		Where("user_id = ? AND id <> ?", a.UserID, a.ID).
		Update("is_default", false).Error
}
