package model

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

// Style belongs to exactly one category.
type Style struct {
	gorm.Model
	Name       string `gorm:"uniqueIndex"`
	CategoryID uint

	Category Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
