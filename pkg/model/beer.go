package model

import "gorm.io/gorm"

type Beer struct {
	gorm.Model
	Name        string `gorm:"size:150;not null"`
	Description *string
	ABV         *float64
	IBU         *float64
	BreweryID   *uint
	StyleID     *uint
	CategoryID  *uint

	Brewery  *Brewery  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Style    *Style    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Category *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
