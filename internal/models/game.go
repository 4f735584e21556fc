package models

import "time"

type Game struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Image string `gorm:"size:255" json:"image"`

	StockTotal  int `gorm:"not null" json:"stockTotal"`
	PricePerDay int `gorm:"not null" json:"pricePerDay"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
