package models

import "time"

type Rental struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `json:"customerId"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	GameID uint `json:"gameId"`
	Game   Game `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	RentDate   Date `json:"rentDate"`
	DaysRented int  `gorm:"not null" json:"daysRented"`

	// ReturnDate null means the rental is still out.
	ReturnDate *Date `json:"returnDate"`

	OriginalPrice int  `gorm:"not null" json:"originalPrice"`
	DelayFee      *int `json:"delayFee"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
