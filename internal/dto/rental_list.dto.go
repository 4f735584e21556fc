package dto

import "github.com/gbmahou1/boardcamp-backend/internal/models"

type RentalCustomerDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RentalGameDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	CategoryID   uint   `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

type RentalListDTO struct {
	ID            uint         `json:"id"`
	CustomerID    uint         `json:"customerId"`
	GameID        uint         `json:"gameId"`
	RentDate      models.Date  `json:"rentDate"`
	DaysRented    int          `json:"daysRented"`
	ReturnDate    *models.Date `json:"returnDate"`
	OriginalPrice int          `json:"originalPrice"`
	DelayFee      *int         `json:"delayFee"`

	Customer RentalCustomerDTO `json:"customer"`
	Game     RentalGameDTO     `json:"game"`
}

// NewRentalListDTO flattens a preloaded rental into the embedded shape.
func NewRentalListDTO(r models.Rental) RentalListDTO {
	return RentalListDTO{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		GameID:        r.GameID,
		RentDate:      r.RentDate,
		DaysRented:    r.DaysRented,
		ReturnDate:    r.ReturnDate,
		OriginalPrice: r.OriginalPrice,
		DelayFee:      r.DelayFee,
		Customer: RentalCustomerDTO{
			ID:   r.Customer.ID,
			Name: r.Customer.Name,
		},
		Game: RentalGameDTO{
			ID:           r.Game.ID,
			Name:         r.Game.Name,
			CategoryID:   r.Game.CategoryID,
			CategoryName: r.Game.Category.Name,
		},
	}
}
