package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Brand struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `json:"description"`
	Country     string  `json:"country"`
	FoundedYear *int    `json:"founded_year"`
	Watches     []Watch `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"-"`
}

func (b *Brand) BeforeSave(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = slug.Make(b.Name)
	}
	return nil
}
