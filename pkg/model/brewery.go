package model

import (
	"gorm.io/gorm"
)

type Brewery struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	Address     string `gorm:"size:255"`
	City        string `gorm:"size:100"`
	Country     string `gorm:"size:100"`
	Phone       string
	Website     string
	Description string `gorm:"size:2000"`
}
